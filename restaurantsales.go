// Package restaurantsales analyzes a restaurant's sales log against its food
// item catalog.
//
// Usage:
//
//	import "github.com/sushantpadha/restaurant-sales/engine"
//
//	view := engine.NewEnrichedView(engine.Join(sales, catalog))
//	sel, _ := engine.NewSelection(0, 4, 1, []string{"burger"})
//	result, err := engine.Execute(view, sel,
//	    engine.WithMeasure(engine.MeasureRevenue),
//	    engine.WithOpeningHours(9, 21),
//	)
//
// The engine joins, filters and pivots the data into a Matrix and returns
// render-ready output: the compiled table, the highlights report and a chart
// config. Loading CSV files lives in helpers, the interactive menu in
// selector, and drawing the chart in render.
package restaurantsales
