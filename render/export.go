package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sushantpadha/restaurant-sales/engine"
)

// ============================================================================
// EXPORT: matrix as CSV or the full result as JSON
// ============================================================================

// WriteCSV writes the matrix with the index as first column.
func WriteCSV(w io.Writer, m *engine.Matrix) error {
	cw := csv.NewWriter(w)

	header := append([]string{m.IndexName}, m.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for r, key := range m.Rows {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, key)
		for c := range m.Columns {
			row = append(row, engine.FormatAmount(m.Cells[r][c]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the whole result, indented.
func WriteJSON(w io.Writer, result *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// ExportFile writes result to path, choosing JSON for ".json" and CSV
// otherwise.
func ExportFile(result *engine.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = WriteJSON(f, result)
	} else {
		err = WriteCSV(f, result.Matrix)
	}
	if err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	log.Infof("Analysis exported to %s", path)
	return nil
}
