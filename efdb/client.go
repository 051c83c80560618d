// Package efdb provides read-only lookups into an embedded extract of the
// IPCC Emission Factor Database for the waste and IPPU sectors.
//
// The datasets ship inside the binary; the client parses them once on first
// use and answers filtered queries from memory. It is a data source only:
// the sector equation packages never depend on it, they consume whatever
// factors the caller selects.
package efdb

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//go:embed data/efdb_waste.json
var rawWasteJSON []byte

//go:embed data/efdb_ippu.json
var rawIPPUJSON []byte

// Reader answers filtered emission factor lookups per sector.
type Reader interface {
	// Waste returns waste-sector emission factors matching q.
	Waste(q Query) []Record

	// IPPU returns IPPU-sector emission factors matching q.
	IPPU(q Query) []Record
}

// Client implements Reader over the embedded EFDB extracts.
type Client struct {
	logger zerolog.Logger

	once sync.Once
	err  error

	waste []Record
	ippu  []Record
}

// NewClient creates a Client over the embedded datasets. The logger is used
// for query tracing and parse diagnostics. Initialization fails if either
// embedded dataset does not decode.
func NewClient(logger zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init decodes the embedded datasets exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		waste, err := decodeDataset("waste", rawWasteJSON)
		if err != nil {
			c.err = err
			return
		}
		ippu, err := decodeDataset("ippu", rawIPPUJSON)
		if err != nil {
			c.err = err
			return
		}

		c.waste = waste.Records
		c.ippu = ippu.Records

		c.logger.Debug().
			Int("waste_records", len(c.waste)).
			Int("ippu_records", len(c.ippu)).
			Str("waste_vintage", waste.Vintage).
			Str("ippu_vintage", ippu.Vintage).
			Msg("EFDB datasets loaded")
	})
	return c.err
}

func decodeDataset(sector string, raw []byte) (dataset, error) {
	var d dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return dataset{}, fmt.Errorf("failed to parse embedded %s EFDB dataset: %w", sector, err)
	}
	if d.Sector != sector {
		return dataset{}, fmt.Errorf("embedded EFDB dataset mismatch: want sector %q, got %q", sector, d.Sector)
	}
	return d, nil
}

// Waste returns waste-sector emission factors matching q.
func (c *Client) Waste(q Query) []Record {
	return c.filter("waste", c.waste, q)
}

// IPPU returns IPPU-sector emission factors matching q.
func (c *Client) IPPU(q Query) []Record {
	return c.filter("ippu", c.ippu, q)
}

// filter applies q to records. Each query carries a trace ID so individual
// lookups can be correlated in debug logs.
func (c *Client) filter(sector string, records []Record, q Query) []Record {
	traceID := uuid.New().String()

	var out []Record
	for _, r := range records {
		if q.Region != "" && !strings.EqualFold(r.Region, q.Region) {
			continue
		}
		if q.Gas != "" && !strings.EqualFold(r.Gas, q.Gas) {
			continue
		}
		if q.Search != "" && !containsFold(r.Description, q.Search) {
			continue
		}
		out = append(out, r)
	}

	c.logger.Debug().
		Str("trace_id", traceID).
		Str("sector", sector).
		Str("region", q.Region).
		Str("gas", q.Gas).
		Str("search", q.Search).
		Int("matches", len(out)).
		Msg("EFDB query")

	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
