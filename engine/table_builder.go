package engine

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"
)

// ============================================================================
// TABLE BUILDER: "Compiled sales data"
// ============================================================================

// BuildTable turns a matrix into printable rows with capitalized labels.
// Hour rows keep their numeric key.
func BuildTable(m *Matrix) *TableData {
	td := &TableData{
		Title:   "Compiled sales data",
		Index:   Capitalize(m.IndexName),
		Columns: make([]string, len(m.Columns)),
		Rows:    make([][]string, 0, len(m.Rows)),
	}
	for i, c := range m.Columns {
		td.Columns[i] = Capitalize(c)
	}

	for r, key := range m.Rows {
		label := key
		if m.Axis != AxisHour {
			label = Capitalize(key)
		}
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, label)
		for c := range m.Columns {
			row = append(row, FormatAmount(m.Cells[r][c]))
		}
		td.Rows = append(td.Rows, row)
	}
	return td
}

// RenderTable lays the table out in aligned columns.
func RenderTable(td *TableData) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "%s\t%s\t\n", td.Index, strings.Join(td.Columns, "\t"))
	for _, row := range td.Rows {
		fmt.Fprintf(w, "%s\t\n", strings.Join(row, "\t"))
	}
	w.Flush()
	return buf.String()
}
