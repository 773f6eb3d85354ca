package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// AGGREGATOR: Filter, pivot, reindex, zero-fill
// ============================================================================
// Pipeline: allow-list filter → sum measure per (index, column) → reindex
// rows to the full axis domain → reject an all-zero result.
// ============================================================================

// Aggregate pivots the enriched view into a Matrix for the selection.
// Rows always cover the whole axis domain and absent cells are 0. An
// all-zero matrix is reported as an *EmptyResultError.
func Aggregate(view RecordView, sel Selection, opts ...Option) (*Matrix, error) {
	return aggregate(view, sel, applyOptions(opts))
}

func aggregate(view RecordView, sel Selection, cfg *config) (*Matrix, error) {
	if sel.Group.HasItemFilter() && len(sel.Group.Items) == 0 {
		return nil, &EmptyResultError{Reason: "no valid food items selected"}
	}

	columns := groupColumns(view, sel.Group, cfg.Measure)
	rows := rowDomain(sel, cfg)
	filtered := ApplyItemFilter(view, sel.ItemFilter())

	rowPos := positions(rows)
	colPos := positions(columns)
	cells := make([][]float64, len(rows))
	for i := range cells {
		cells[i] = make([]float64, len(columns))
	}

	indexKey := sel.Axis.IndexName()
	colKey := sel.Group.Column()
	outside := 0
	for i := 0; i < filtered.Len(); i++ {
		r, ok := rowPos[pivotKey(filtered, i, indexKey)]
		if !ok {
			outside++
			continue
		}
		c := 0
		if colKey != "" {
			if c, ok = colPos[pivotKey(filtered, i, colKey)]; !ok {
				continue
			}
		}
		cells[r][c] += filtered.Measure(i, cfg.Measure)
	}
	if outside > 0 {
		log.Debugf("Aggregate: %d rows fall outside the %s domain", outside, sel.Axis)
	}

	m := &Matrix{
		Axis:      sel.Axis,
		IndexName: indexKey,
		Rows:      rows,
		Columns:   columns,
		Cells:     cells,
	}
	if m.IsZero() {
		return nil, &EmptyResultError{Reason: fmt.Sprintf("%d matching rows sum to zero", filtered.Len())}
	}

	log.Debugf("Aggregate: %dx%d matrix (index=%s, columns=%q, measure=%s)",
		len(rows), len(columns), indexKey, colKey, cfg.Measure)
	return m, nil
}

// rowDomain is the full, ordered row index for the axis.
func rowDomain(sel Selection, cfg *config) []string {
	switch sel.Axis {
	case AxisHour:
		rows := make([]string, len(cfg.Hours))
		for i, h := range cfg.Hours {
			rows[i] = strconv.Itoa(h)
		}
		return rows
	case AxisWeekday:
		return append([]string(nil), cfg.Weekdays...)
	default:
		return append([]string(nil), sel.Group.Items...)
	}
}

// groupColumns lists the pivot columns. Data-driven keys keep the order in
// which they first appear in the unfiltered table.
func groupColumns(view RecordView, group GroupKey, measure string) []string {
	switch group.Kind {
	case GroupNone, GroupByItem:
		return []string{measure}
	case GroupItems:
		return append([]string(nil), group.Items...)
	default:
		return UniqueValues(view, group.Column())
	}
}

// pivotKey reads a pivot dimension; item names compare case-insensitively.
func pivotKey(view RecordView, i int, key string) string {
	v := view.Dimension(i, key)
	if key == "food_item" {
		return strings.ToLower(v)
	}
	return v
}

func positions(keys []string) map[string]int {
	pos := make(map[string]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}
	return pos
}

// ============================================================================
// VIEW UTILITIES
// ============================================================================

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// UniqueValues returns distinct non-empty values of a dimension in
// first-seen order.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// FormatAmount prints whole numbers without decimals, others with two.
func FormatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
