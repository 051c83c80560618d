// Command generate-efdb converts EFDB CSV extracts into the embedded JSON
// datasets consumed by the efdb package. Run it after refreshing the CSV
// extracts from a new EFDB export:
//
//	go run ./tools/generate-efdb -config tools/generate-efdb/datasets.yaml
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// CSV column indices for EFDB extracts.
const (
	colEFID      = 0 // ef_id
	colCategory  = 1 // ipcc_category
	colGas       = 2 // gas
	colRegion    = 3 // region
	colDesc      = 4 // description
	colValue     = 5 // value
	colUnit      = 6 // unit
	colReference = 7 // technical_reference
)

// Dataset describes one sector extract in datasets.yaml.
type Dataset struct {
	Sector  string `yaml:"sector"`
	Vintage string `yaml:"vintage"`
	Source  string `yaml:"source"`
	Out     string `yaml:"out"`
}

// Config contains all configured datasets.
type Config struct {
	Datasets []Dataset `yaml:"datasets"`
}

// record matches the efdb package's embedded JSON layout.
type record struct {
	ID          string  `json:"ef_id"`
	Sector      string  `json:"sector"`
	Category    string  `json:"ipcc_category"`
	Gas         string  `json:"gas"`
	Region      string  `json:"region"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Unit        string  `json:"unit"`
	Reference   string  `json:"technical_reference"`
}

type dataset struct {
	Sector  string   `json:"sector"`
	Vintage string   `json:"vintage"`
	Records []record `json:"records"`
}

func main() {
	configPath := flag.String("config", "tools/generate-efdb/datasets.yaml", "Path to datasets config")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range config.Datasets {
		if err := generateDataset(ds); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s dataset: %v\n", ds.Sector, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s from %s\n", ds.Out, ds.Source)
	}
}

// loadConfig reads and validates the YAML dataset manifest.
func loadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if len(config.Datasets) == 0 {
		return nil, fmt.Errorf("no datasets defined in config file")
	}
	for _, ds := range config.Datasets {
		if ds.Sector == "" || ds.Source == "" || ds.Out == "" {
			return nil, fmt.Errorf("dataset entry missing sector, source or out")
		}
	}
	return &config, nil
}

// generateDataset parses one CSV extract and writes the JSON dataset.
func generateDataset(ds Dataset) error {
	f, err := os.Open(ds.Source)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	records, err := parseRecords(ds.Sector, f)
	if err != nil {
		return err
	}

	out := dataset{
		Sector:  ds.Sector,
		Vintage: ds.Vintage,
		Records: records,
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	encoded = append(encoded, '\n')

	if err := os.WriteFile(ds.Out, encoded, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// parseRecords reads EFDB rows from a CSV extract, skipping the header row
// and any row without an identifier or a parseable value.
func parseRecords(sector string, r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		if len(row) <= colReference {
			continue
		}

		id := strings.TrimSpace(row[colEFID])
		if id == "" {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[colValue]), 64)
		if err != nil {
			continue
		}

		records = append(records, record{
			ID:          id,
			Sector:      sector,
			Category:    strings.TrimSpace(row[colCategory]),
			Gas:         strings.TrimSpace(row[colGas]),
			Region:      strings.TrimSpace(row[colRegion]),
			Description: strings.TrimSpace(row[colDesc]),
			Value:       value,
			Unit:        strings.TrimSpace(row[colUnit]),
			Reference:   strings.TrimSpace(row[colReference]),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no usable rows in %s extract", sector)
	}
	return records, nil
}
