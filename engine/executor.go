package engine

import (
	"github.com/google/uuid"
	"github.com/op/go-logging"
)

// ============================================================================
// EXECUTOR: One analysis run
// ============================================================================
// Entry point: Execute(view, selection, opts...)
//
// Pipeline:
//   1. Aggregate → Matrix (fails on an all-zero result)
//   2. Build the compiled table
//   3. Build the highlights report
//   4. Build the chart config
//
// Nothing here terminates the process; errors go back to the caller.
// ============================================================================

var log = logging.MustGetLogger("log")

// Execute runs a Selection against the enriched sales view.
//
// Options:
//   - WithMeasure(key): sum "quantity" (default) or "revenue"
//   - WithTopN(n): dishes listed for the food item axis
//   - WithOpeningHours(open, close): hour axis domain
//   - WithRunID(id): otherwise a random UUID is used
func Execute(view RecordView, sel Selection, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	log.Infof("[run %s] Processing %d rows, axis=%s, group=%d, chart=%s, measure=%s",
		cfg.RunID, view.Len(), sel.Axis, sel.Group.Kind, sel.Chart, cfg.Measure)

	m, err := aggregate(view, sel, cfg)
	if err != nil {
		log.Warningf("[run %s] %v", cfg.RunID, err)
		return nil, err
	}

	return &Result{
		RunID:      cfg.RunID,
		Selection:  sel,
		Matrix:     m,
		Table:      BuildTable(m),
		Highlights: buildHighlights(m, sel, cfg),
		Chart:      BuildChart(m, sel),
	}, nil
}
