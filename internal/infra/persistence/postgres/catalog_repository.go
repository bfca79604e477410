package postgres

import (
	"context"
	"strings"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/repository"
	"greenlake/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for the catalog repository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// upsertByID inserts the row or overwrites every column of the row with the same ID.
var upsertByID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}},
	UpdateAll: true,
}

func (repo *catalogRepository) FindHotelByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotelM model.HotelModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&hotelM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, dbError(err, "failed to find hotel")
	}

	return toHotelDomain(&hotelM), nil
}

func (repo *catalogRepository) ListHotels(ctx context.Context, city string) ([]*entity.Hotel, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if city = strings.TrimSpace(city); city != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
	}

	var hotelMs []*model.HotelModel
	if err := query.Find(&hotelMs).Error; err != nil {
		return nil, dbError(err, "failed to list hotels")
	}

	hotels := make([]*entity.Hotel, 0, len(hotelMs))
	for _, hotelM := range hotelMs {
		hotels = append(hotels, toHotelDomain(hotelM))
	}

	return hotels, nil
}

func (repo *catalogRepository) ListOccupancy(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*entity.HotelOccupancy, error) {
	var rows []*model.HotelOccupancyModel
	err := repo.db.WithContext(ctx).
		Where("hotel_id = ? AND date >= ? AND date <= ?", hotelID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, dbError(err, "failed to list hotel occupancy")
	}

	occupancy := make([]*entity.HotelOccupancy, 0, len(rows))
	for _, row := range rows {
		occupancy = append(occupancy, &entity.HotelOccupancy{
			ID:            row.ID,
			HotelID:       row.HotelID,
			Date:          row.Date,
			OccupancyRate: row.OccupancyRate,
		})
	}

	return occupancy, nil
}

func (repo *catalogRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&vehicleM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, dbError(err, "failed to find vehicle")
	}

	return toVehicleDomain(&vehicleM), nil
}

func (repo *catalogRepository) ListVehicles(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicleMs []*model.VehicleModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&vehicleMs).Error; err != nil {
		return nil, dbError(err, "failed to list vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleMs))
	for _, vehicleM := range vehicleMs {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles, nil
}

func (repo *catalogRepository) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	var routeMs []*model.RouteModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&routeMs).Error; err != nil {
		return nil, dbError(err, "failed to list routes")
	}

	routes := make([]*entity.Route, 0, len(routeMs))
	for _, r := range routeMs {
		routes = append(routes, &entity.Route{
			ID:            r.ID,
			Code:          r.Code,
			Name:          r.Name,
			Origin:        r.Origin,
			Destination:   r.Destination,
			DistanceKm:    r.DistanceKm,
			TransportMode: r.TransportMode,
			Price:         r.Price,
			EcoScore:      r.EcoScore,
			UpdatedAt:     r.UpdatedAt,
		})
	}

	return routes, nil
}

func (repo *catalogRepository) ListServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceMs []*model.ServiceModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&serviceMs).Error; err != nil {
		return nil, dbError(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceMs))
	for _, s := range serviceMs {
		services = append(services, &entity.Service{
			ID:        s.ID,
			Code:      s.Code,
			Name:      s.Name,
			Category:  s.Category,
			Provider:  s.Provider,
			Price:     s.Price,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return services, nil
}

func (repo *catalogRepository) UpsertHotel(ctx context.Context, hotel *entity.Hotel) error {
	hotelM := &model.HotelModel{
		ID:                  hotel.ID,
		Code:                hotel.Code,
		Name:                hotel.Name,
		City:                hotel.City,
		Address:             hotel.Address,
		Stars:               hotel.Stars,
		PricePerNight:       hotel.PricePerNight,
		RecyclingRate:       hotel.RecyclingRate,
		RenewableEnergyRate: hotel.RenewableEnergyRate,
		WasteReductionRate:  hotel.WasteReductionRate,
		EcoScore:            hotel.EcoScore,
	}
	if err := repo.db.WithContext(ctx).Clauses(upsertByID).Create(hotelM).Error; err != nil {
		return dbError(err, "failed to upsert hotel")
	}

	return nil
}

func (repo *catalogRepository) UpsertOccupancy(ctx context.Context, occupancy *entity.HotelOccupancy) error {
	row := &model.HotelOccupancyModel{
		ID:            occupancy.ID,
		HotelID:       occupancy.HotelID,
		Date:          entity.TruncateToDay(occupancy.Date),
		OccupancyRate: occupancy.OccupancyRate,
	}
	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"occupancy_rate"}),
	}).Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrHotelNotFound
		}

		return dbError(err, "failed to upsert hotel occupancy")
	}

	return nil
}

func (repo *catalogRepository) UpsertVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := &model.VehicleModel{
		ID:          vehicle.ID,
		Code:        vehicle.Code,
		Name:        vehicle.Name,
		VehicleType: vehicle.VehicleType,
		Seats:       vehicle.Seats,
		PricePerDay: vehicle.PricePerDay,
		EcoScore:    vehicle.EcoScore,
	}
	if err := repo.db.WithContext(ctx).Clauses(upsertByID).Create(vehicleM).Error; err != nil {
		return dbError(err, "failed to upsert vehicle")
	}

	return nil
}

func (repo *catalogRepository) UpsertRoute(ctx context.Context, route *entity.Route) error {
	routeM := &model.RouteModel{
		ID:            route.ID,
		Code:          route.Code,
		Name:          route.Name,
		Origin:        route.Origin,
		Destination:   route.Destination,
		DistanceKm:    route.DistanceKm,
		TransportMode: route.TransportMode,
		Price:         route.Price,
		EcoScore:      route.EcoScore,
	}
	if err := repo.db.WithContext(ctx).Clauses(upsertByID).Create(routeM).Error; err != nil {
		return dbError(err, "failed to upsert route")
	}

	return nil
}

func (repo *catalogRepository) UpsertService(ctx context.Context, service *entity.Service) error {
	serviceM := &model.ServiceModel{
		ID:       service.ID,
		Code:     service.Code,
		Name:     service.Name,
		Category: service.Category,
		Provider: service.Provider,
		Price:    service.Price,
	}
	if err := repo.db.WithContext(ctx).Clauses(upsertByID).Create(serviceM).Error; err != nil {
		return dbError(err, "failed to upsert service")
	}

	return nil
}

func toHotelDomain(h *model.HotelModel) *entity.Hotel {
	return &entity.Hotel{
		ID:                  h.ID,
		Code:                h.Code,
		Name:                h.Name,
		City:                h.City,
		Address:             h.Address,
		Stars:               h.Stars,
		PricePerNight:       h.PricePerNight,
		RecyclingRate:       h.RecyclingRate,
		RenewableEnergyRate: h.RenewableEnergyRate,
		WasteReductionRate:  h.WasteReductionRate,
		EcoScore:            h.EcoScore,
		UpdatedAt:           h.UpdatedAt,
	}
}

func toVehicleDomain(v *model.VehicleModel) *entity.Vehicle {
	return &entity.Vehicle{
		ID:          v.ID,
		Code:        v.Code,
		Name:        v.Name,
		VehicleType: v.VehicleType,
		Seats:       v.Seats,
		PricePerDay: v.PricePerDay,
		EcoScore:    v.EcoScore,
		UpdatedAt:   v.UpdatedAt,
	}
}
