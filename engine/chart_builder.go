package engine

import "strconv"

// ============================================================================
// CHART BUILDER: Produces ChartConfig from a Matrix
// ============================================================================
// One series per matrix column, in column order. Colors cycle through a
// fixed palette by column position.
// ============================================================================

// Palette holds the series colors, cycled with modulo.
var Palette = []string{"red", "green", "blue", "brown", "magenta", "cyan"}

// Axis padding, matching the look of the report charts.
const (
	xPad = -0.3
	yMin = -0.1
)

// BuildChart produces a ChartConfig for the matrix and chart kind.
func BuildChart(m *Matrix, sel Selection) *ChartConfig {
	if m == nil || len(m.Columns) == 0 {
		return nil
	}

	cfg := &ChartConfig{
		ChartType:  sel.Chart,
		Title:      "Sales Analysis",
		XAxis:      xAxisLabel(m.Axis),
		YAxis:      "Orders / Sales",
		ShowLegend: true,
		XMin:       xPad,
		YMin:       yMin,
	}

	xs := make([]float64, len(m.Rows))
	cfg.Ticks = make([]ChartTick, len(m.Rows))
	for i, key := range m.Rows {
		xs[i] = float64(i)
		label := Capitalize(key)
		if m.Axis == AxisHour {
			if h, err := strconv.Atoi(key); err == nil {
				xs[i] = float64(h)
			}
			label = key
		}
		cfg.Ticks[i] = ChartTick{Position: xs[i], Label: label}
	}
	if len(xs) > 0 {
		cfg.XMin = xs[0] + xPad
	}

	cfg.Series = make([]ChartSeries, 0, len(m.Columns))
	for c, name := range m.Columns {
		points := make([]ChartPoint, len(m.Rows))
		for r := range m.Rows {
			points[r] = ChartPoint{X: xs[r], Label: cfg.Ticks[r].Label, Value: m.Cells[r][c]}
		}
		cfg.Series = append(cfg.Series, ChartSeries{
			Name:  Capitalize(name),
			Data:  points,
			Color: Palette[c%len(Palette)],
		})
	}
	return cfg
}

func xAxisLabel(a Axis) string {
	switch a {
	case AxisHour:
		return "Hour"
	case AxisWeekday:
		return "Weekday"
	default:
		return "Food Items"
	}
}
