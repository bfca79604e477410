// Package dataset reads the CSV tourism datasets into broker records.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strings"

	"greenlake/internal/domain/entity"
	"greenlake/internal/errors"
)

// keySeparator joins multi-column natural keys
const keySeparator = "|"

// CSVLoader turns dataset CSV files into records
type CSVLoader struct {
	dataset entity.Dataset
}

// NewCSVLoader creates a loader for one dataset
func NewCSVLoader(dataset entity.Dataset) *CSVLoader {
	return &CSVLoader{dataset: dataset}
}

// LoadFile loads every row of the file at path
func (l *CSVLoader) LoadFile(path string) ([]*entity.DatasetRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return l.Load(file)
}

// Load reads a header row followed by data rows. Columns are addressed by
// header name; blank lines are skipped. A row with no key is still returned
// so the importer can report it.
func (l *CSVLoader) Load(r io.Reader) ([]*entity.DatasetRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Width is checked below with the line number in the message
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.Errorf("%s: missing header row", l.dataset)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	columns, err := normalizeHeader(header)
	if err != nil {
		return nil, errors.Wrapf(err, "%s header", l.dataset)
	}
	for _, key := range l.dataset.KeyColumns() {
		if !slices.Contains(columns, key) {
			return nil, errors.Errorf("%s: header lacks key column %q", l.dataset, key)
		}
	}

	var records []*entity.DatasetRecord

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum, _ := reader.FieldPos(0)

		if isBlank(row) {
			continue
		}
		if len(row) != len(columns) {
			return nil, errors.Errorf("invalid %s csv at line %d: expected %d columns, got %d",
				l.dataset, lineNum, len(columns), len(row))
		}

		fields := make(map[string]string, len(columns))
		for idx, column := range columns {
			fields[column] = strings.TrimSpace(row[idx])
		}

		record := &entity.DatasetRecord{
			Dataset: l.dataset,
			Line:    lineNum,
			Fields:  fields,
		}
		record.Key = recordKey(record, l.dataset.KeyColumns())

		records = append(records, record)
	}

	return records, nil
}

func normalizeHeader(header []string) ([]string, error) {
	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))

	for idx, raw := range header {
		// Spreadsheet exports prefix the first cell with a BOM
		column := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff")))
		if column == "" {
			return nil, errors.Errorf("empty column name at position %d", idx+1)
		}
		if _, dup := seen[column]; dup {
			return nil, errors.Errorf("duplicate column %q", column)
		}
		seen[column] = struct{}{}
		columns[idx] = column
	}

	return columns, nil
}

func recordKey(record *entity.DatasetRecord, keyColumns []string) string {
	parts := make([]string, 0, len(keyColumns))
	for _, column := range keyColumns {
		value := record.Field(column)
		if value == "" {
			return ""
		}
		parts = append(parts, value)
	}

	return strings.Join(parts, keySeparator)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
