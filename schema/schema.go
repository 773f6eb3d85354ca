package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA: Describes the shape of the two input files
// ============================================================================
// The loaders use these descriptions to map CSV headers to columns and to
// reject files that lack a column the join or the pivot depends on.
// ============================================================================

var ErrMissingColumn = errors.New("missing required column")

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`
}

// DimensionMeta describes a string field used for joining, grouping or
// filtering.
type DimensionMeta struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	Allowed     []string `json:"allowed,omitempty"` // empty = free text
}

// MeasureMeta describes a numeric field.
type MeasureMeta struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"displayName"`
	Unit        string  `json:"unit,omitempty"` // "currency", "units", "hhmm", "day"
	Integer     bool    `json:"integer,omitempty"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max,omitempty"` // 0 = unbounded
}

// Sales describes sales.csv.
func Sales() Config {
	return Config{
		Name:        "sales",
		Description: "One row per ordered food item",
		Dimensions: []DimensionMeta{
			{Key: "food_item", DisplayName: "Food Item"},
			{Key: "order_type", DisplayName: "Order Type", Allowed: []string{"dine", "delivery"}},
		},
		Measures: []MeasureMeta{
			{Key: "time", DisplayName: "Time", Unit: "hhmm", Integer: true, Min: 0, Max: 2359},
			{Key: "day", DisplayName: "Day", Unit: "day", Integer: true, Min: 1, Max: 6},
			{Key: "quantity", DisplayName: "Quantity", Unit: "units", Integer: true, Min: 0},
		},
	}
}

// Catalog describes food_items.csv.
func Catalog() Config {
	return Config{
		Name:        "food_items",
		Description: "Food items on the menu",
		Dimensions: []DimensionMeta{
			{Key: "food_item", DisplayName: "Food Item"},
			{Key: "food_category", DisplayName: "Food Category"},
			{Key: "food_type", DisplayName: "Food Type", Allowed: []string{"veg", "non-veg"}},
		},
		Measures: []MeasureMeta{
			{Key: "price", DisplayName: "Price", Unit: "currency", Min: 0},
		},
	}
}

// ColumnKeys returns dimension keys followed by measure keys.
func (c Config) ColumnKeys() []string {
	keys := make([]string, 0, len(c.Dimensions)+len(c.Measures))
	for _, d := range c.Dimensions {
		keys = append(keys, d.Key)
	}
	for _, m := range c.Measures {
		keys = append(keys, m.Key)
	}
	return keys
}

// Dimension looks up a dimension by key.
func (c Config) Dimension(key string) (DimensionMeta, bool) {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return DimensionMeta{}, false
}

// Measure looks up a measure by key.
func (c Config) Measure(key string) (MeasureMeta, bool) {
	for _, m := range c.Measures {
		if m.Key == key {
			return m, true
		}
	}
	return MeasureMeta{}, false
}

// MapHeaders returns the position of every schema column in headers.
// Extra columns are ignored; a missing column is an error.
func (c Config) MapHeaders(headers []string) (map[string]int, error) {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		key := NormalizeHeader(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	var missing []string
	out := make(map[string]int)
	for _, key := range c.ColumnKeys() {
		i, ok := pos[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		out[key] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingColumn, c.Name, strings.Join(missing, ", "))
	}
	return out, nil
}

// IsAllowed reports whether v is a legal value of an enum dimension.
func (d DimensionMeta) IsAllowed(v string) bool {
	if len(d.Allowed) == 0 {
		return true
	}
	for _, a := range d.Allowed {
		if strings.EqualFold(a, v) {
			return true
		}
	}
	return false
}

// InRange reports whether v respects the measure's bounds.
func (m MeasureMeta) InRange(v float64) bool {
	if v < m.Min {
		return false
	}
	return m.Max == 0 || v <= m.Max
}

// NormalizeHeader converts "Food Item" / "food-item" → "food_item".
// A UTF-8 byte order mark on the first header is dropped.
func NormalizeHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
