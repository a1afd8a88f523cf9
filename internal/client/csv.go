package client

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-privacy-pipeline/models"
)

// ReadCSV reads a table whose first record is the header. Empty cells become
// nulls.
func ReadCSV(r io.Reader) (models.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return models.Table{}, fmt.Errorf("csv has no header")
	}
	if err != nil {
		return models.Table{}, fmt.Errorf("error reading csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := models.Table{Columns: header, Rows: make([]models.Row, 0)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return models.Table{}, fmt.Errorf("error reading csv: %w", err)
		}

		row := make(models.Row, len(record))
		for i, cell := range record {
			if cell != "" {
				row[i] = models.Str(cell)
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if err = table.Validate(); err != nil {
		return models.Table{}, err
	}
	return table, nil
}

// ReadCSVFile opens path and reads it with [ReadCSV].
func ReadCSVFile(path string) (models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Table{}, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return models.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// identifierFromPath names a dataset after its file: "data/customers.csv"
// becomes "customers".
func identifierFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
