package catalogRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalog(t *testing.T) {
	repo := NewSeededCatalogRepo()
	ctx := context.Background()

	t.Run("lists are served in seed order", func(t *testing.T) {
		packages, err := repo.ListPackages(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, packages)
		assert.Equal(t, "pkg-essential", packages[0].ID)

		hotels, err := repo.ListHotels(ctx)
		require.NoError(t, err)
		assert.Equal(t, "hot-riverside", hotels[0].ID)
	})

	t.Run("lookup by id", func(t *testing.T) {
		pkg, err := repo.GetPackage(ctx, "pkg-business")
		require.NoError(t, err)
		assert.Equal(t, int64(210000), pkg.Price)

		transfer, err := repo.GetTransfer(ctx, "trf-private")
		require.NoError(t, err)
		assert.Equal(t, int64(12000), transfer.Price)
	})

	t.Run("unknown ids return ErrNotFound", func(t *testing.T) {
		_, err := repo.GetHotel(ctx, "hot-nowhere")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("tours filter by category", func(t *testing.T) {
		all, err := repo.ListTours(ctx, "")
		require.NoError(t, err)

		dayTrips, err := repo.ListTours(ctx, "day-trip")
		require.NoError(t, err)
		assert.Less(t, len(dayTrips), len(all))
		for _, tour := range dayTrips {
			assert.Equal(t, "day-trip", tour.Category)
		}
	})

	t.Run("GetTours skips unresolved ids", func(t *testing.T) {
		tours, err := repo.GetTours(ctx, []string{"tour-wine", "tour-vanished", "tour-coast"})
		require.NoError(t, err)
		require.Len(t, tours, 2)
		assert.Equal(t, "tour-wine", tours[0].ID)
		assert.Equal(t, "tour-coast", tours[1].ID)
	})
}
