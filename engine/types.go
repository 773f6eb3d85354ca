package engine

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ============================================================================
// ENGINE TYPES: Restaurant Sales Analytics
// ============================================================================
// MenuItem and Transaction are read once from CSV and never mutated.
// EnrichedTransaction is the join of both; the hour bucket and weekday name
// are derived on read instead of being written back into the row.
// ============================================================================

// FoodType is the veg / non-veg classification of a menu item.
type FoodType string

const (
	FoodTypeVeg    FoodType = "veg"
	FoodTypeNonVeg FoodType = "non-veg"
)

// OrderType tells whether an order was eaten in or delivered.
type OrderType string

const (
	OrderTypeDine     OrderType = "dine"
	OrderTypeDelivery OrderType = "delivery"
)

// Restaurant opening hours: 9 AM (0900) to 9 PM (2100).
const (
	OpeningHour = 9
	ClosingHour = 21
)

// WeekdayNames maps day 1..6 to its name. The restaurant is closed on Sunday.
var WeekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ============================================================================
// INPUT ROWS
// ============================================================================

// MenuItem is one row of the food item catalog.
type MenuItem struct {
	Name     string          `json:"food_item"`
	Category string          `json:"food_category"`
	FoodType FoodType        `json:"food_type"`
	Price    decimal.Decimal `json:"price"`
}

// Transaction is one row of the sales log.
type Transaction struct {
	FoodItem  string    `json:"food_item"`
	Time      int       `json:"time"` // 0..2359, e.g. 1230 for half past noon
	Day       int       `json:"day"`  // 1 = monday ... 6 = saturday
	OrderType OrderType `json:"order_type"`
	Quantity  int       `json:"quantity"`
}

// EnrichedTransaction is a Transaction joined with its MenuItem.
type EnrichedTransaction struct {
	Transaction
	Item MenuItem
}

// Hour buckets the 4-digit time into an hour of day: round(time/100),
// rounding half to even.
func (e EnrichedTransaction) Hour() int {
	return HourBucket(e.Time)
}

// Weekday returns the day name, or "" when Day is outside 1..6.
func (e EnrichedTransaction) Weekday() string {
	if e.Day < 1 || e.Day > len(WeekdayNames) {
		return ""
	}
	return WeekdayNames[e.Day-1]
}

// Revenue is quantity × price.
func (e EnrichedTransaction) Revenue() decimal.Decimal {
	return e.Item.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// HourBucket converts a military-style time (1230) to its hour bucket (12).
func HourBucket(t int) int {
	return int(math.RoundToEven(float64(t) / 100))
}

// ============================================================================
// MATRIX: pivoted aggregation output
// ============================================================================

// Matrix is the pivoted summary: one row per axis value, one column per
// group key, cells holding the summed measure.
type Matrix struct {
	Axis      Axis        `json:"axis"`
	IndexName string      `json:"index"`
	Rows      []string    `json:"rows"`
	Columns   []string    `json:"columns"`
	Cells     [][]float64 `json:"cells"`
}

// Value returns the cell at (row, col).
func (m *Matrix) Value(row, col int) float64 {
	return m.Cells[row][col]
}

// Column returns a copy of one column's values in row order.
func (m *Matrix) Column(col int) []float64 {
	out := make([]float64, len(m.Rows))
	for i := range m.Rows {
		out[i] = m.Cells[i][col]
	}
	return out
}

// RowTotals returns the row-wise sum across all columns.
func (m *Matrix) RowTotals() []float64 {
	out := make([]float64, len(m.Rows))
	for i, row := range m.Cells {
		for _, v := range row {
			out[i] += v
		}
	}
	return out
}

// IsZero reports whether every cell is zero.
func (m *Matrix) IsZero() bool {
	for _, row := range m.Cells {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// RowLabel is the human-friendly label of row i: "12 PM" for hours,
// "Monday" for weekdays, "Paneer wrap" for items.
func (m *Matrix) RowLabel(i int) string {
	if m.Axis == AxisHour {
		if h, ok := parseHour(m.Rows[i]); ok {
			return FormatHour(h)
		}
	}
	return Capitalize(m.Rows[i])
}

// ============================================================================
// RESULT: render-ready output of one analysis run
// ============================================================================

// Result bundles everything derived from one Selection.
type Result struct {
	RunID      string       `json:"runId"`
	Selection  Selection    `json:"selection"`
	Matrix     *Matrix      `json:"matrix"`
	Table      *TableData   `json:"table"`
	Highlights *Highlights  `json:"highlights"`
	Chart      *ChartConfig `json:"chart"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  ChartKind     `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	XMin       float64       `json:"xMin"`
	YMin       float64       `json:"yMin"`
	Ticks      []ChartTick   `json:"ticks"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
}

// ChartTick is one labelled position on the x axis.
type ChartTick struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	X     float64 `json:"x"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is the compiled matrix prepared for printing.
type TableData struct {
	Title   string     `json:"title"`
	Index   string     `json:"index"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ============================================================================
// LABEL HELPERS
// ============================================================================

// Capitalize capitalizes each underscore-separated word: "food_item" →
// "Food Item", "non-veg" → "Non-veg".
func Capitalize(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
