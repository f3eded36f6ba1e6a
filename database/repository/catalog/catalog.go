package catalogRepo

import (
	"context"
	"errors"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// ErrNotFound is returned when an id does not resolve to a catalog entry.
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository serves the read-only reference data for the flagship
// event: packages, hotels, transfer options and tours.
type CatalogRepository interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)

	ListHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)

	ListTransfers(ctx context.Context) ([]models.TransferOption, error)
	GetTransfer(ctx context.Context, id string) (*models.TransferOption, error)

	// ListTours returns all tours, or only those in the given category when
	// category is non-empty.
	ListTours(ctx context.Context, category string) ([]models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	// GetTours resolves a set of tour ids; ids that do not resolve are
	// silently skipped so callers can treat them as "nothing selected".
	GetTours(ctx context.Context, ids []string) ([]models.Tour, error)
}
