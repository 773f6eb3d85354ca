package engine

import (
	"fmt"
	"sort"
	"strings"
)

// ============================================================================
// TEXT BUILDER: "Sales data highlights"
// ============================================================================
// Hour / weekday axis: per-column sum, max and argmax over the matrix plus a
// synthetic "total" column; busiest = argmax of total.
// Food item axis: top N dishes by value.
// ============================================================================

// TotalColumn names the synthetic row-sum column.
const TotalColumn = "total"

// ColumnStat summarizes one matrix column.
type ColumnStat struct {
	Column   string  `json:"column"`
	Sum      float64 `json:"sum"`
	Max      float64 `json:"max"`
	ArgMax   string  `json:"argMax"`   // row key holding Max, first occurrence
	MaxLabel string  `json:"maxLabel"` // ArgMax formatted for display
}

// RankedItem is one entry of the "most ordered dishes" list.
type RankedItem struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Highlights is the report derived from a Matrix.
type Highlights struct {
	Axis    Axis         `json:"axis"`
	Group   GroupKind    `json:"group"`
	Unit    string       `json:"unit"`
	Busiest *ColumnStat  `json:"busiest,omitempty"`
	Columns []ColumnStat `json:"columns,omitempty"`
	Ranking []RankedItem `json:"ranking,omitempty"`
}

// BuildHighlights computes the report for a matrix.
func BuildHighlights(m *Matrix, sel Selection, opts ...Option) *Highlights {
	return buildHighlights(m, sel, applyOptions(opts))
}

func buildHighlights(m *Matrix, sel Selection, cfg *config) *Highlights {
	h := &Highlights{
		Axis:  m.Axis,
		Group: sel.Group.Kind,
		Unit:  unitFor(cfg.Measure),
	}

	if m.Axis == AxisFoodItem {
		h.Ranking = rankRows(m, cfg.TopN)
		return h
	}

	for c, name := range m.Columns {
		h.Columns = append(h.Columns, columnStat(m, name, m.Column(c)))
	}
	total := columnStat(m, TotalColumn, m.RowTotals())
	h.Busiest = &total

	if sel.Group.Kind == GroupNone {
		h.Columns = nil
	}
	return h
}

func columnStat(m *Matrix, name string, values []float64) ColumnStat {
	st := ColumnStat{Column: name}
	best := -1
	for i, v := range values {
		st.Sum += v
		if best < 0 || v > values[best] {
			best = i
		}
	}
	if best >= 0 {
		st.Max = values[best]
		st.ArgMax = m.Rows[best]
		st.MaxLabel = m.RowLabel(best)
	}
	return st
}

// rankRows orders rows by their total, descending; ties keep row order.
func rankRows(m *Matrix, n int) []RankedItem {
	totals := m.RowTotals()
	order := make([]int, len(m.Rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return totals[order[a]] > totals[order[b]] })

	if n > len(order) {
		n = len(order)
	}
	ranking := make([]RankedItem, 0, n)
	for i, r := range order[:n] {
		ranking = append(ranking, RankedItem{Rank: i + 1, Name: m.Rows[r], Value: totals[r]})
	}
	return ranking
}

func unitFor(measure string) string {
	if measure == MeasureRevenue {
		return "in sales"
	}
	return "orders"
}

// ============================================================================
// RENDERING
// ============================================================================

// RenderHighlights formats the report as printable lines.
func RenderHighlights(h *Highlights) string {
	var b strings.Builder

	if h.Axis == AxisFoodItem {
		b.WriteString("Most ordered dishes:\n")
		for _, r := range h.Ranking {
			fmt.Fprintf(&b, "%d.\t%s (%s %s)\n", r.Rank, Capitalize(r.Name), FormatAmount(r.Value), h.Unit)
		}
		return b.String()
	}

	noun, prep := "Hour", "during"
	if h.Axis == AxisWeekday {
		noun, prep = "Day", "on"
	}

	if h.Busiest != nil {
		fmt.Fprintf(&b, "Busiest %s: %s (%s %s)\n", noun, h.Busiest.MaxLabel, FormatAmount(h.Busiest.Max), h.Unit)
	}
	for _, st := range h.Columns {
		fmt.Fprintf(&b, "Most %s %s: %s (%s %s)\n",
			columnPhrase(h.Group, st.Column), prep, st.MaxLabel, FormatAmount(st.Max), h.Unit)
	}
	return b.String()
}

// columnPhrase describes what a group column counts, e.g. "dine-in orders".
func columnPhrase(kind GroupKind, column string) string {
	switch kind {
	case GroupCategory:
		return fmt.Sprintf("'%s' orders", Capitalize(column))
	case GroupOrderType:
		if column == string(OrderTypeDine) {
			return "dine-in orders"
		}
		return column + " orders"
	case GroupFoodType:
		return column + " orders"
	case GroupItems:
		return fmt.Sprintf("orders of '%s'", Capitalize(column))
	}
	return column
}
