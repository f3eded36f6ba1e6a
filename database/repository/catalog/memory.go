package catalogRepo

import (
	"context"
	"sync"

	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// MemoryCatalogRepo is the seeded in-memory CatalogRepository. The catalog is
// reference data for a single event, loaded once at startup; lists are served
// in seed order.
type MemoryCatalogRepo struct {
	mu        sync.RWMutex
	packages  []models.Package
	hotels    []models.Hotel
	transfers []models.TransferOption
	tours     []models.Tour

	packageByID  map[string]*models.Package
	hotelByID    map[string]*models.Hotel
	transferByID map[string]*models.TransferOption
	tourByID     map[string]*models.Tour
}

// NewMemoryCatalogRepo builds a repo from the given entities.
func NewMemoryCatalogRepo(packages []models.Package, hotels []models.Hotel, transfers []models.TransferOption, tours []models.Tour) *MemoryCatalogRepo {
	r := &MemoryCatalogRepo{
		packages:     packages,
		hotels:       hotels,
		transfers:    transfers,
		tours:        tours,
		packageByID:  make(map[string]*models.Package, len(packages)),
		hotelByID:    make(map[string]*models.Hotel, len(hotels)),
		transferByID: make(map[string]*models.TransferOption, len(transfers)),
		tourByID:     make(map[string]*models.Tour, len(tours)),
	}
	for i := range r.packages {
		r.packageByID[r.packages[i].ID] = &r.packages[i]
	}
	for i := range r.hotels {
		r.hotelByID[r.hotels[i].ID] = &r.hotels[i]
	}
	for i := range r.transfers {
		r.transferByID[r.transfers[i].ID] = &r.transfers[i]
	}
	for i := range r.tours {
		r.tourByID[r.tours[i].ID] = &r.tours[i]
	}
	return r
}

// NewSeededCatalogRepo builds the repo from the flagship event seed data.
func NewSeededCatalogRepo() *MemoryCatalogRepo {
	return NewMemoryCatalogRepo(seedPackages(), seedHotels(), seedTransfers(), seedTours())
}

func (r *MemoryCatalogRepo) ListPackages(ctx context.Context) ([]models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Package, len(r.packages))
	copy(out, r.packages)
	return out, nil
}

func (r *MemoryCatalogRepo) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.packageByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *MemoryCatalogRepo) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Hotel, len(r.hotels))
	copy(out, r.hotels)
	return out, nil
}

func (r *MemoryCatalogRepo) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hotelByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *MemoryCatalogRepo) ListTransfers(ctx context.Context) ([]models.TransferOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.TransferOption, len(r.transfers))
	copy(out, r.transfers)
	return out, nil
}

func (r *MemoryCatalogRepo) GetTransfer(ctx context.Context, id string) (*models.TransferOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transferByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryCatalogRepo) ListTours(ctx context.Context, category string) ([]models.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if category == "" {
		out := make([]models.Tour, len(r.tours))
		copy(out, r.tours)
		return out, nil
	}
	var out []models.Tour
	for _, t := range r.tours {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *MemoryCatalogRepo) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tourByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryCatalogRepo) GetTours(ctx context.Context, ids []string) ([]models.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Tour, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.tourByID[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}
