package engine

import "strconv"

// ============================================================================
// RECORD VIEW: Read-only access to enriched sales rows
// ============================================================================
// The aggregator never copies or mutates the joined table; it reads columns
// through this interface.
//
// Implementations:
//   DomainView[T] : reads typed structs via registered accessor functions
//   SubView       : filtered subset (indices into a parent view)
// ============================================================================

// RecordView provides indexed, column-keyed access to a table.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) float64
	DimensionKeys() []string
	MeasureKeys() []string
}

// Measures available on enriched rows.
const (
	MeasureQuantity = "quantity"
	MeasureRevenue  = "revenue"
)

// enrichedAdapter declares the columns of the joined sales table.
var enrichedAdapter = NewDomainAdapter[EnrichedTransaction]().
	Dimension("food_item", func(e EnrichedTransaction) string { return e.FoodItem }).
	Dimension("food_category", func(e EnrichedTransaction) string { return e.Item.Category }).
	Dimension("food_type", func(e EnrichedTransaction) string { return string(e.Item.FoodType) }).
	Dimension("order_type", func(e EnrichedTransaction) string { return string(e.OrderType) }).
	Dimension("hour", func(e EnrichedTransaction) string { return strconv.Itoa(e.Hour()) }).
	Dimension("day", func(e EnrichedTransaction) string { return e.Weekday() }).
	Measure(MeasureQuantity, func(e EnrichedTransaction) float64 { return float64(e.Quantity) }).
	Measure(MeasureRevenue, func(e EnrichedTransaction) float64 { return e.Revenue().InexactFloat64() }).
	Measure("time", func(e EnrichedTransaction) float64 { return float64(e.Time) })

// NewEnrichedView binds joined rows to a RecordView. The slice is not copied.
func NewEnrichedView(rows []EnrichedTransaction) RecordView {
	return enrichedAdapter.Bind(rows)
}

// ============================================================================
// SUB VIEW: filtered subset
// ============================================================================

// SubView holds indices into a parent RecordView.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// ============================================================================
// DOMAIN ADAPTER: typed struct access
// ============================================================================

// DomainAdapter builds a RecordView over a slice of T from accessor funcs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	dimOrder []string
	mesOrder []string
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
}

// NewDomainAdapter creates an empty adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		dims: make(map[string]func(T) string),
		meas: make(map[string]func(T) float64),
	}
}

// Dimension registers a string column.
func (a *DomainAdapter[T]) Dimension(key string, fn func(T) string) *DomainAdapter[T] {
	if _, exists := a.dims[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.dims[key] = fn
	return a
}

// Measure registers a numeric column.
func (a *DomainAdapter[T]) Measure(key string, fn func(T) float64) *DomainAdapter[T] {
	if _, exists := a.meas[key]; !exists {
		a.mesOrder = append(a.mesOrder, key)
	}
	a.meas[key] = fn
	return a
}

// Bind wraps data without copying it.
func (a *DomainAdapter[T]) Bind(data []T) RecordView {
	return &DomainView[T]{
		data:     data,
		dims:     a.dims,
		meas:     a.meas,
		dimKeys:  a.dimOrder,
		measKeys: a.mesOrder,
	}
}

// DomainView reads struct fields through the adapter's accessors.
type DomainView[T any] struct {
	data     []T
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
	dimKeys  []string
	measKeys []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	if fn, ok := v.dims[key]; ok {
		return fn(v.data[i])
	}
	return ""
}

func (v *DomainView[T]) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	if fn, ok := v.meas[key]; ok {
		return fn(v.data[i])
	}
	return 0
}

func (v *DomainView[T]) DimensionKeys() []string { return v.dimKeys }
func (v *DomainView[T]) MeasureKeys() []string   { return v.measKeys }
