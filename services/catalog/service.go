// File: catalog/catalog_service.go
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	catalogRepo "github.com/molatlhegiM/2Gether-Travels-sub000/database/repository/catalog"
	"github.com/molatlhegiM/2Gether-Travels-sub000/models"
)

// listCacheTTL bounds staleness of the cached list responses.
const listCacheTTL = 5 * time.Minute

// CatalogService serves catalog reads, caching full-list responses in Redis.
type CatalogService interface {
	ListPackages(ctx context.Context) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (*models.Package, error)
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	ListTransfers(ctx context.Context) ([]models.TransferOption, error)
	GetTransfer(ctx context.Context, id string) (*models.TransferOption, error)
	ListTours(ctx context.Context, category string) ([]models.Tour, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo        catalogRepo.CatalogRepository
	CacheClient *redis.Client
	Logger      *zap.Logger
}

// cachedList is a read-through cache for a whole listing. Cache failures are
// logged and fall through to the repo so the catalog stays available.
func cachedList[T any](ctx context.Context, s *DefaultCatalogService, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if data, err := s.CacheClient.Get(ctx, key).Result(); err == nil {
		var out []T
		if err := json.Unmarshal([]byte(data), &out); err == nil {
			return out, nil
		}
		s.Logger.Warn("corrupt catalog cache entry", zap.String("key", key))
	}

	out, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(out); err == nil {
		if err := s.CacheClient.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
			s.Logger.Warn("failed to cache catalog listing", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

func (s *DefaultCatalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return cachedList(ctx, s, "catalog:packages", s.Repo.ListPackages)
}

func (s *DefaultCatalogService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	return s.Repo.GetPackage(ctx, id)
}

func (s *DefaultCatalogService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return cachedList(ctx, s, "catalog:hotels", s.Repo.ListHotels)
}

func (s *DefaultCatalogService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return s.Repo.GetHotel(ctx, id)
}

func (s *DefaultCatalogService) ListTransfers(ctx context.Context) ([]models.TransferOption, error) {
	return cachedList(ctx, s, "catalog:transfers", s.Repo.ListTransfers)
}

func (s *DefaultCatalogService) GetTransfer(ctx context.Context, id string) (*models.TransferOption, error) {
	return s.Repo.GetTransfer(ctx, id)
}

func (s *DefaultCatalogService) ListTours(ctx context.Context, category string) ([]models.Tour, error) {
	key := "catalog:tours"
	if category != "" {
		key += ":" + category
	}
	return cachedList(ctx, s, key, func(ctx context.Context) ([]models.Tour, error) {
		return s.Repo.ListTours(ctx, category)
	})
}
