package engine

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// HIGHLIGHTS
// ============================================================================

func TestHighlightsHourByCategory(t *testing.T) {
	sel := mustSelection(0, 1, 0)
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	h := BuildHighlights(m, sel)
	require.NotNil(t, h.Busiest)
	assert.Equal(t, "21", h.Busiest.ArgMax)
	assert.Equal(t, 4.0, h.Busiest.Max)
	require.Len(t, h.Columns, 3)
	assert.Equal(t, 3.0, h.Columns[1].Sum)

	want := "Busiest Hour: 9 PM (4 orders)\n" +
		"Most 'Mains' orders during: 12 PM (3 orders)\n" +
		"Most 'Sides' orders during: 9 AM (3 orders)\n" +
		"Most 'Drinks' orders during: 9 PM (4 orders)\n"
	assert.Equal(t, want, RenderHighlights(h))
}

func TestHighlightsBurgerByHour(t *testing.T) {
	res, err := Execute(testView(), mustSelection(0, 4, 0, "burger"))
	require.NoError(t, err)

	want := "Busiest Hour: 12 PM (3 orders)\n" +
		"Most orders of 'Burger' during: 12 PM (3 orders)\n"
	assert.Equal(t, want, RenderHighlights(res.Highlights))
}

func TestHighlightsTieKeepsFirstRow(t *testing.T) {
	sel := mustSelection(1, 4, 0, "burger", "fries")
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	h := BuildHighlights(m, sel)
	assert.Equal(t, "monday", h.Busiest.ArgMax)
	assert.Equal(t, "Monday", h.Busiest.MaxLabel)
	assert.Equal(t, "Tuesday", h.Columns[1].MaxLabel)
}

func TestHighlightsOrderTypePhrases(t *testing.T) {
	sel := mustSelection(1, 2, 0)
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	out := RenderHighlights(BuildHighlights(m, sel))
	assert.Contains(t, out, "Busiest Day: Saturday (4 orders)\n")
	assert.Contains(t, out, "Most dine-in orders on: Tuesday (3 orders)\n")
	assert.Contains(t, out, "Most delivery orders on: Saturday (4 orders)\n")
}

func TestHighlightsNoGroupOmitsColumns(t *testing.T) {
	sel := mustSelection(0, 0, 0)
	m, err := Aggregate(testView(), sel, WithMeasure(MeasureRevenue))
	require.NoError(t, err)

	h := BuildHighlights(m, sel, WithMeasure(MeasureRevenue))
	assert.Nil(t, h.Columns)
	assert.Equal(t, "Busiest Hour: 12 PM (16.50 in sales)\n", RenderHighlights(h))
}

func TestHighlightsTopDishes(t *testing.T) {
	sel := mustSelection(2, 0, 0, "burger", "coke", "fries", "paneer wrap")
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	h := BuildHighlights(m, sel)
	assert.Nil(t, h.Busiest)
	require.Len(t, h.Ranking, 3)
	assert.Equal(t, "Most ordered dishes:\n1.\tBurger (4 orders)\n2.\tCoke (4 orders)\n3.\tFries (4 orders)\n", RenderHighlights(h))

	h = BuildHighlights(m, sel, WithTopN(10))
	require.Len(t, h.Ranking, 4)
	assert.Equal(t, RankedItem{Rank: 4, Name: "paneer wrap", Value: 2}, h.Ranking[3])
}

// ============================================================================
// TABLE
// ============================================================================

func TestBuildTableHour(t *testing.T) {
	m, err := Aggregate(testView(), mustSelection(0, 0, 0))
	require.NoError(t, err)

	td := BuildTable(m)
	assert.Equal(t, "Compiled sales data", td.Title)
	assert.Equal(t, "Hour", td.Index)
	assert.Equal(t, []string{"Quantity"}, td.Columns)
	assert.Equal(t, []string{"9", "3"}, td.Rows[0])
	assert.Len(t, td.Rows, 13)

	out := RenderTable(td)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 14)
	assert.Contains(t, lines[0], "Quantity")
}

func TestBuildTableItemLabels(t *testing.T) {
	m, err := Aggregate(testView(), mustSelection(2, 0, 0, "paneer wrap", "burger"))
	require.NoError(t, err)

	td := BuildTable(m)
	assert.Equal(t, "Food Item", td.Index)
	assert.Equal(t, []string{"Burger", "4"}, td.Rows[0])
	assert.Equal(t, []string{"Paneer wrap", "2"}, td.Rows[1])
}

// ============================================================================
// CHART
// ============================================================================

func TestBuildChartHourLine(t *testing.T) {
	sel := mustSelection(0, 2, 0)
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	cfg := BuildChart(m, sel)
	require.NotNil(t, cfg)
	assert.Equal(t, ChartLine, cfg.ChartType)
	assert.Equal(t, "Sales Analysis", cfg.Title)
	assert.Equal(t, "Hour", cfg.XAxis)
	assert.InDelta(t, 8.7, cfg.XMin, 1e-9)
	assert.Equal(t, ChartTick{Position: 9, Label: "9"}, cfg.Ticks[0])

	require.Len(t, cfg.Series, 2)
	assert.Equal(t, "Dine", cfg.Series[0].Name)
	assert.Equal(t, "red", cfg.Series[0].Color)
	assert.Equal(t, "green", cfg.Series[1].Color)
	assert.Len(t, cfg.Series[1].Data, 13)
}

func TestBuildChartWeekdayPositions(t *testing.T) {
	sel := mustSelection(1, 0, 1)
	m, err := Aggregate(testView(), sel)
	require.NoError(t, err)

	cfg := BuildChart(m, sel)
	assert.Equal(t, ChartBar, cfg.ChartType)
	assert.InDelta(t, -0.3, cfg.XMin, 1e-9)
	assert.Equal(t, ChartTick{Position: 5, Label: "Saturday"}, cfg.Ticks[5])
	assert.Equal(t, 4.0, cfg.Series[0].Data[5].Value)
}

func TestBuildChartPaletteWraps(t *testing.T) {
	cols := []string{"a", "b", "c", "d", "e", "f", "g"}
	cells := [][]float64{{1, 1, 1, 1, 1, 1, 1}}
	m := &Matrix{Axis: AxisWeekday, IndexName: "day", Rows: []string{"monday"}, Columns: cols, Cells: cells}

	cfg := BuildChart(m, mustSelection(1, 4, 0, cols...))
	require.Len(t, cfg.Series, 7)
	assert.Equal(t, "cyan", cfg.Series[5].Color)
	assert.Equal(t, "red", cfg.Series[6].Color)
}

// ============================================================================
// EXECUTE
// ============================================================================

func TestExecute(t *testing.T) {
	res, err := Execute(testView(), mustSelection(1, 3, 1), WithRunID("run-1"))
	require.NoError(t, err)

	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, []string{"non-veg", "veg"}, res.Matrix.Columns)
	assert.Equal(t, "Compiled sales data", res.Table.Title)
	assert.NotNil(t, res.Highlights.Busiest)
	assert.Equal(t, ChartBar, res.Chart.ChartType)
}

func TestExecuteAssignsRunID(t *testing.T) {
	res, err := Execute(testView(), mustSelection(0, 0, 0))
	require.NoError(t, err)

	_, err = uuid.Parse(res.RunID)
	assert.NoError(t, err)
}

func TestExecuteEmptyResult(t *testing.T) {
	res, err := Execute(testView(), mustSelection(1, 4, 0, "pizza"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrEmptyResult)
}
