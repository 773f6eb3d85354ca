package engine

// ============================================================================
// ENGINE OPTIONS: Functional options for Aggregate / Execute
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Measure  string   // measure summed into the matrix cells
	TopN     int      // dishes listed for the food item axis
	Hours    []int    // row domain for the hour axis
	Weekdays []string // row domain for the weekday axis
	RunID    string
}

// WithMeasure sets the measure to sum ("quantity" or "revenue").
func WithMeasure(measure string) Option {
	return func(c *config) {
		if measure != "" {
			c.Measure = measure
		}
	}
}

// WithTopN sets how many dishes the food item highlights list.
func WithTopN(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.TopN = n
		}
	}
}

// WithOpeningHours overrides the hour axis domain (inclusive).
func WithOpeningHours(open, close int) Option {
	return func(c *config) {
		if open > close {
			return
		}
		c.Hours = hourRange(open, close)
	}
}

// WithRunID stamps the Result with a caller-chosen id.
func WithRunID(id string) Option {
	return func(c *config) {
		c.RunID = id
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Measure:  MeasureQuantity,
		TopN:     3,
		Hours:    hourRange(OpeningHour, ClosingHour),
		Weekdays: WeekdayNames,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func hourRange(open, close int) []int {
	hours := make([]int, 0, close-open+1)
	for h := open; h <= close; h++ {
		hours = append(hours, h)
	}
	return hours
}
