// seed/csv_parser.go
package seed

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/skysql/models"
)

//go:embed data/*.csv
var dataFS embed.FS

// parseCSV decodes every record of r into T using the csv struct tags. The
// first line must be a header.
func parseCSV[T any](r io.Reader, what string) ([]T, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create CSV decoder for %s: %w", what, err)
	}
	var out []T
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s CSV data: %w", what, err)
	}
	return out, nil
}

func ParseAirlines(r io.Reader) ([]models.Airline, error) {
	return parseCSV[models.Airline](r, "airlines")
}

func ParseAirports(r io.Reader) ([]models.Airport, error) {
	return parseCSV[models.Airport](r, "airports")
}

func ParseRoutes(r io.Reader) ([]models.Route, error) {
	return parseCSV[models.Route](r, "routes")
}

func ParseAircraftConfigs(r io.Reader) ([]models.AircraftConfig, error) {
	return parseCSV[models.AircraftConfig](r, "aircraft configs")
}

// Dataset is the reference data loaded into a fresh database.
type Dataset struct {
	Airlines []models.Airline
	Airports []models.Airport
	Routes   []models.Route
	Aircraft []models.AircraftConfig
}

// LoadDataset parses the embedded reference CSV files.
func LoadDataset() (*Dataset, error) {
	var (
		ds  Dataset
		err error
	)
	if ds.Airlines, err = parseEmbedded("airlines.csv", ParseAirlines); err != nil {
		return nil, err
	}
	if ds.Airports, err = parseEmbedded("airports.csv", ParseAirports); err != nil {
		return nil, err
	}
	if ds.Routes, err = parseEmbedded("routes.csv", ParseRoutes); err != nil {
		return nil, err
	}
	if ds.Aircraft, err = parseEmbedded("aircraft_configs.csv", ParseAircraftConfigs); err != nil {
		return nil, err
	}
	return &ds, nil
}

func parseEmbedded[T any](name string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := dataFS.Open("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded %s: %w", name, err)
	}
	defer f.Close()
	return parse(f)
}
