package impl

import (
	"strconv"
	"strings"
	"time"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
	"greenlake/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// datasetNamespace seeds the deterministic IDs of imported rows, so re-importing
// a row updates it instead of inserting a copy.
var datasetNamespace = uuid.MustParse("5b0d6c1e-8f3a-4e27-9c41-7a2f0e6b9d13")

// datasetID derives the stable ID of the row with the given natural key.
func datasetID(dataset entity.Dataset, key string) uuid.UUID {
	return uuid.NewSHA1(datasetNamespace, []byte(string(dataset)+":"+key))
}

// fieldDecoder reads typed columns from a record and collects every problem it finds.
type fieldDecoder struct {
	record   *entity.DatasetRecord
	problems []string
}

func newFieldDecoder(record *entity.DatasetRecord) *fieldDecoder {
	return &fieldDecoder{record: record}
}

func (d *fieldDecoder) fail(column, problem string) {
	d.problems = append(d.problems, column+": "+problem)
}

func (d *fieldDecoder) str(column string, required bool) string {
	value := d.record.Field(column)
	if value == "" && required {
		d.fail(column, "is required")
	}

	return value
}

func (d *fieldDecoder) integer(column string, minValue int64) int64 {
	raw := d.str(column, true)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		d.fail(column, "not an integer")

		return 0
	}
	if value < minValue {
		d.fail(column, "must be at least "+strconv.FormatInt(minValue, 10))
	}

	return value
}

// optionalInt returns nil for an empty column.
func (d *fieldDecoder) optionalInt(column string, minValue int64) *int {
	if d.record.Field(column) == "" {
		return nil
	}

	value := int(d.integer(column, minValue))

	return &value
}

func (d *fieldDecoder) percentage(column string) float64 {
	raw := d.str(column, true)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
	if err != nil {
		d.fail(column, "not a number")

		return 0
	}
	if value < 0 || value > 100 {
		d.fail(column, "must be between 0 and 100")
	}

	return value
}

func (d *fieldDecoder) float(column string) float64 {
	raw := d.str(column, true)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		d.fail(column, "not a number")

		return 0
	}
	if value < 0 {
		d.fail(column, "must not be negative")
	}

	return value
}

func (d *fieldDecoder) money(column string) decimal.Decimal {
	raw := d.str(column, true)
	if raw == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		d.fail(column, "not a decimal amount")

		return decimal.Zero
	}
	if value.IsNegative() {
		d.fail(column, "must not be negative")
	}

	return value
}

func (d *fieldDecoder) date(column string) time.Time {
	raw := d.str(column, true)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if value, err := time.Parse(layout, raw); err == nil {
			return value.UTC()
		}
	}
	d.fail(column, "not a date (YYYY-MM-DD or RFC 3339)")

	return time.Time{}
}

func (d *fieldDecoder) boolean(column string, fallback bool) bool {
	raw := d.record.Field(column)
	if raw == "" {
		return fallback
	}

	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y":
		return true
	case "0", "false", "no", "n":
		return false
	}
	d.fail(column, "not a boolean")

	return fallback
}

// naturalKey rebuilds the key from the key columns, so the ID never depends on
// how the publisher formatted record.Key.
func (d *fieldDecoder) naturalKey() string {
	columns := d.record.Dataset.KeyColumns()
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, d.str(column, true))
	}

	return strings.Join(parts, "|")
}

func (d *fieldDecoder) err() error {
	if len(d.problems) == 0 {
		return nil
	}

	return errors.Wrap(usecase.ErrMalformedRecord, strings.Join(d.problems, "; "))
}

// decodeRecord validates a record and returns the entity it describes.
func decodeRecord(record *entity.DatasetRecord) (any, error) {
	if record == nil {
		return nil, errors.Wrap(usecase.ErrMalformedRecord, "empty record")
	}

	d := newFieldDecoder(record)
	key := d.naturalKey()
	id := datasetID(record.Dataset, key)

	var decoded any
	switch record.Dataset {
	case entity.DatasetHotels:
		decoded = decodeHotel(d, id)
	case entity.DatasetHotelOccupancy:
		decoded = decodeOccupancy(d, id)
	case entity.DatasetVehicles:
		decoded = decodeVehicle(d, id)
	case entity.DatasetRoutes:
		decoded = decodeRoute(d, id)
	case entity.DatasetServices:
		decoded = decodeService(d, id)
	case entity.DatasetDiscounts:
		decoded = decodeDiscount(d, id)
	case entity.DatasetAmenities:
		decoded = decodeAmenity(d, id)
	default:
		return nil, errors.Wrapf(usecase.ErrMalformedRecord, "unknown dataset %q", record.Dataset)
	}

	if err := d.err(); err != nil {
		return nil, err
	}

	return decoded, nil
}

func decodeHotel(d *fieldDecoder, id uuid.UUID) *entity.Hotel {
	hotel := &entity.Hotel{
		ID:                  id,
		Code:                d.str("code", true),
		Name:                d.str("name", true),
		City:                d.str("city", true),
		Address:             d.str("address", false),
		Stars:               int(d.integer("stars", 0)),
		PricePerNight:       d.money("price_per_night"),
		RecyclingRate:       d.percentage("recycling_rate"),
		RenewableEnergyRate: d.percentage("renewable_energy_rate"),
		WasteReductionRate:  d.percentage("waste_reduction_rate"),
	}
	if hotel.Stars > 5 {
		d.fail("stars", "must be at most 5")
	}
	hotel.EcoScore = entity.HotelEcoScore(hotel.RecyclingRate, hotel.RenewableEnergyRate, hotel.WasteReductionRate)

	return hotel
}

func decodeOccupancy(d *fieldDecoder, id uuid.UUID) *entity.HotelOccupancy {
	return &entity.HotelOccupancy{
		ID:            id,
		HotelID:       datasetID(entity.DatasetHotels, d.str("hotel_code", true)),
		Date:          entity.TruncateToDay(d.date("date")),
		OccupancyRate: d.percentage("occupancy_rate"),
	}
}

func decodeVehicle(d *fieldDecoder, id uuid.UUID) *entity.Vehicle {
	vehicle := &entity.Vehicle{
		ID:          id,
		Code:        d.str("code", true),
		Name:        d.str("name", true),
		VehicleType: strings.ToUpper(d.str("vehicle_type", true)),
		Seats:       int(d.integer("seats", 1)),
		PricePerDay: d.money("price_per_day"),
	}
	vehicle.EcoScore = entity.ModeEcoScore(vehicle.VehicleType)

	return vehicle
}

func decodeRoute(d *fieldDecoder, id uuid.UUID) *entity.Route {
	route := &entity.Route{
		ID:            id,
		Code:          d.str("code", true),
		Name:          d.str("name", true),
		Origin:        d.str("origin", true),
		Destination:   d.str("destination", true),
		DistanceKm:    d.float("distance_km"),
		TransportMode: strings.ToUpper(d.str("transport_mode", true)),
		Price:         d.money("price"),
	}
	route.EcoScore = entity.ModeEcoScore(route.TransportMode)

	return route
}

func decodeService(d *fieldDecoder, id uuid.UUID) *entity.Service {
	return &entity.Service{
		ID:       id,
		Code:     d.str("code", true),
		Name:     d.str("name", true),
		Category: d.str("category", false),
		Provider: d.str("provider", false),
		Price:    d.money("price"),
	}
}

func decodeDiscount(d *fieldDecoder, id uuid.UUID) *entity.Discount {
	discount := &entity.Discount{
		ID:            id,
		Code:          d.str("code", true),
		Name:          d.str("name", true),
		Description:   d.str("description", false),
		TokenCost:     d.integer("token_cost", 1),
		DiscountType:  entity.DiscountType(strings.ToUpper(d.str("discount_type", true))),
		DiscountValue: d.money("discount_value"),
		ValidFrom:     d.date("valid_from"),
		ValidUntil:    d.date("valid_until"),
		MaxUses:       d.optionalInt("max_uses", 0),
		IsActive:      d.boolean("is_active", true),
	}

	switch discount.DiscountType {
	case entity.DiscountTypePercentage:
		if discount.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
			d.fail("discount_value", "percentage above 100")
		}
	case entity.DiscountTypeFixedAmount:
	default:
		d.fail("discount_type", "must be PERCENTAGE or FIXED_AMOUNT")
	}
	if !discount.ValidFrom.IsZero() && discount.ValidUntil.Before(discount.ValidFrom) {
		d.fail("valid_until", "is before valid_from")
	}

	return discount
}

func decodeAmenity(d *fieldDecoder, id uuid.UUID) *entity.Amenity {
	return &entity.Amenity{
		ID:          id,
		Code:        d.str("code", true),
		Name:        d.str("name", true),
		Description: d.str("description", false),
		TokenCost:   d.integer("token_cost", 1),
		IsActive:    d.boolean("is_active", true),
		MaxQuantity: d.optionalInt("max_quantity", 1),
	}
}
