package entity

import "strings"

// Dataset names a CSV tourism dataset handled by the import pipeline.
type Dataset string

const (
	DatasetHotels         Dataset = "hotels"
	DatasetHotelOccupancy Dataset = "hotel_occupancy"
	DatasetVehicles       Dataset = "vehicles"
	DatasetRoutes         Dataset = "routes"
	DatasetServices       Dataset = "services"
	DatasetDiscounts      Dataset = "discounts"
	DatasetAmenities      Dataset = "amenities"
)

// Datasets lists every supported dataset.
var Datasets = []Dataset{
	DatasetHotels,
	DatasetHotelOccupancy,
	DatasetVehicles,
	DatasetRoutes,
	DatasetServices,
	DatasetDiscounts,
	DatasetAmenities,
}

// ParseDataset parses a case-insensitive dataset name.
func ParseDataset(s string) (Dataset, bool) {
	d := Dataset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Datasets {
		if d == known {
			return d, true
		}
	}

	return "", false
}

// KeyColumns returns the columns that form the natural key of a row.
func (d Dataset) KeyColumns() []string {
	if d == DatasetHotelOccupancy {
		return []string{"hotel_code", "date"}
	}

	return []string{"code"}
}

// DatasetRecord is one CSV row in transit between the importer and the ingestor.
type DatasetRecord struct {
	Dataset Dataset           `json:"dataset"`
	Key     string            `json:"key"`  // Natural key of the row, used for idempotent upserts.
	Line    int               `json:"line"` // Source line number, for error reports.
	Fields  map[string]string `json:"fields"`
}

// Field returns the trimmed value of a column, matched case-insensitively.
func (r *DatasetRecord) Field(name string) string {
	if v, ok := r.Fields[name]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range r.Fields {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}

	return ""
}
