package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"greenlake/config"
	deliverycontext "greenlake/internal/delivery/context"
	"greenlake/internal/domain/entity"
	domainerrors "greenlake/internal/domain/errors"
	"greenlake/internal/domain/repository"
	"greenlake/internal/domain/service"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const catalogCachePrefix = "catalog:"

// catalogService implements the CatalogUsecase interface with a read-through cache.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	offerRepo   repository.OfferRepository
	cache       service.Cache
	ttl         time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	OfferRepo   repository.OfferRepository
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	ttl := time.Minute
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.TTL > 0 {
		ttl = params.Config.Cache.TTL
	}

	return &catalogService{
		catalogRepo: params.CatalogRepo,
		offerRepo:   params.OfferRepo,
		cache:       params.Cache,
		ttl:         ttl,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListHotels(ctx context.Context, city string) ([]*entity.Hotel, error) {
	key := "hotels:" + strings.ToLower(strings.TrimSpace(city))

	return cached(ctx, srv, key, func() ([]*entity.Hotel, error) {
		return srv.catalogRepo.ListHotels(ctx, city)
	})
}

func (srv *catalogService) GetHotel(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return cached(ctx, srv, "hotel:"+id.String(), func() (*entity.Hotel, error) {
		hotel, err := srv.catalogRepo.FindHotelByID(ctx, id)
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHotelNotFound, "failed to get hotel")
		}

		return hotel, err
	})
}

func (srv *catalogService) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	return cached(ctx, srv, "vehicles", func() ([]*entity.Vehicle, error) {
		return srv.catalogRepo.ListVehicles(ctx)
	})
}

func (srv *catalogService) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	return cached(ctx, srv, "routes", func() ([]*entity.Route, error) {
		return srv.catalogRepo.ListRoutes(ctx)
	})
}

func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	return cached(ctx, srv, "services", func() ([]*entity.Service, error) {
		return srv.catalogRepo.ListServices(ctx)
	})
}

// ListActiveDiscounts is never cached: it carries usage counters.
func (srv *catalogService) ListActiveDiscounts(ctx context.Context) ([]*entity.Discount, error) {
	discounts, err := srv.offerRepo.ListActiveDiscounts(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active discounts")
	}

	return discounts, nil
}

func (srv *catalogService) ListActiveAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	return cached(ctx, srv, "amenities", func() ([]*entity.Amenity, error) {
		return srv.offerRepo.ListActiveAmenities(ctx)
	})
}

// cached serves key from the cache or loads and stores it. Cache failures only cost a reload.
func cached[T any](ctx context.Context, srv *catalogService, key string, load func() (T, error)) (T, error) {
	key = catalogCachePrefix + key

	if raw, err := srv.cache.Get(ctx, key); err == nil {
		var value T
		if jsonErr := json.Unmarshal(raw, &value); jsonErr == nil {
			return value, nil
		}
		srv.log(ctx).Warn("Dropping undecodable cache entry", slog.String("key", key))
	} else if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	value, err := load()
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to load %s", key)
	}

	raw, err := json.Marshal(value)
	if err == nil {
		err = srv.cache.Set(ctx, key, raw, srv.ttl)
	}
	if err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}
