package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"greenlake/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_LoadHotels(t *testing.T) {
	hotelsCSV := "\ufeffCode, Name ,City,price_per_night\n" +
		"H-001,Lakeside Inn,GreenLake,120.50\n" +
		"\n" +
		",,,\n" +
		"H-002,\"Eco Lodge, North\",GreenLake,89\n" +
		",Nameless,GreenLake,10\n"

	records, err := NewCSVLoader(entity.DatasetHotels).Load(strings.NewReader(hotelsCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, entity.DatasetHotels, records[0].Dataset)
	assert.Equal(t, "H-001", records[0].Key)
	assert.Equal(t, 2, records[0].Line)
	assert.Equal(t, "Lakeside Inn", records[0].Field("name"))
	assert.Equal(t, "120.50", records[0].Field("price_per_night"))

	assert.Equal(t, "Eco Lodge, North", records[1].Field("name"))
	assert.Equal(t, 5, records[1].Line)

	// Keyless rows are kept for the import report
	assert.Empty(t, records[2].Key)
	assert.Equal(t, 6, records[2].Line)
}

func TestCSVLoader_CompositeKey(t *testing.T) {
	occupancyCSV := "hotel_code,date,occupancy_rate\nH-001,2026-07-01,80\n"

	records, err := NewCSVLoader(entity.DatasetHotelOccupancy).Load(strings.NewReader(occupancyCSV))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "H-001|2026-07-01", records[0].Key)
}

func TestCSVLoader_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty file", input: "", want: "missing header"},
		{name: "missing key column", input: "name,city\nInn,Lake\n", want: "key column"},
		{name: "duplicate column", input: "code,name,Name\nH,a,b\n", want: "duplicate column"},
		{name: "empty column name", input: "code,,city\nH,a,b\n", want: "empty column"},
		{name: "ragged row", input: "code,name\nH-1,Inn\nH-2\n", want: "line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSVLoader(entity.DatasetHotels).Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVLoader_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehicles.csv")
	require.NoError(t, os.WriteFile(path, []byte("code,name,vehicle_type\nV-1,City Bike,BICYCLE\n"), 0o644))

	records, err := NewCSVLoader(entity.DatasetVehicles).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "V-1", records[0].Key)

	_, err = NewCSVLoader(entity.DatasetVehicles).LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
