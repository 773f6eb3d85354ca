package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ============================================================================
// SELECTION: What the user asked to analyze
// ============================================================================
// The menu hands us three small integers plus an optional item list.
// NewSelection validates them once and turns the group choice into a GroupKey
// so the aggregator, reporter and chart builder dispatch on a single value.
// ============================================================================

// Axis is the primary dimension of the pivot (its row index).
type Axis int

const (
	AxisHour Axis = iota
	AxisWeekday
	AxisFoodItem
)

func (a Axis) String() string {
	switch a {
	case AxisHour:
		return "hour"
	case AxisWeekday:
		return "weekday"
	case AxisFoodItem:
		return "food_item"
	}
	return "unknown"
}

// IndexName is the enriched-table column the axis pivots on.
func (a Axis) IndexName() string {
	switch a {
	case AxisHour:
		return "hour"
	case AxisWeekday:
		return "day"
	default:
		return "food_item"
	}
}

// GroupKind tags the variant held in a GroupKey.
type GroupKind int

const (
	GroupNone GroupKind = iota
	GroupCategory
	GroupOrderType
	GroupFoodType
	GroupItems
	// GroupByItem is forced when the axis itself is the food item.
	GroupByItem
)

// GroupKey is the secondary dimension splitting each axis value into columns.
// Items is only populated for GroupItems and GroupByItem.
type GroupKey struct {
	Kind  GroupKind `json:"kind"`
	Items []string  `json:"items,omitempty"`
}

// Column is the enriched-table column used as the pivot's columns, or ""
// when the measure is aggregated as a single column.
func (g GroupKey) Column() string {
	switch g.Kind {
	case GroupCategory:
		return "food_category"
	case GroupOrderType:
		return "order_type"
	case GroupFoodType:
		return "food_type"
	case GroupItems:
		return "food_item"
	}
	return ""
}

// HasItemFilter reports whether the group restricts rows to an allow-list.
func (g GroupKey) HasItemFilter() bool {
	return g.Kind == GroupItems || g.Kind == GroupByItem
}

// ChartKind selects the chart style.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartBar
)

func (c ChartKind) String() string {
	if c == ChartBar {
		return "bar"
	}
	return "line"
}

// Selection is a validated analysis request.
type Selection struct {
	Axis  Axis      `json:"axis"`
	Group GroupKey  `json:"group"`
	Chart ChartKind `json:"chart"`
}

// ItemFilter returns the food item allow-list, or nil when none applies.
func (s Selection) ItemFilter() []string {
	if !s.Group.HasItemFilter() {
		return nil
	}
	return s.Group.Items
}

// NewSelection validates raw menu choices. group is ignored for the food
// item axis; items are only kept when the choice calls for them.
func NewSelection(axis, group, chart int, items []string) (Selection, error) {
	if axis < int(AxisHour) || axis > int(AxisFoodItem) {
		return Selection{}, fmt.Errorf("%w: axis %d not in [0, 2]", ErrInvalidSelection, axis)
	}
	if chart < int(ChartLine) || chart > int(ChartBar) {
		return Selection{}, fmt.Errorf("%w: chart %d not in [0, 1]", ErrInvalidSelection, chart)
	}

	sel := Selection{Axis: Axis(axis), Chart: ChartKind(chart)}
	if sel.Axis == AxisFoodItem {
		sel.Group = GroupKey{Kind: GroupByItem, Items: NormalizeItems(items)}
		return sel, nil
	}

	if group < int(GroupNone) || group > int(GroupItems) {
		return Selection{}, fmt.Errorf("%w: group %d not in [0, 4]", ErrInvalidSelection, group)
	}
	sel.Group = GroupKey{Kind: GroupKind(group)}
	if sel.Group.Kind == GroupItems {
		sel.Group.Items = NormalizeItems(items)
	}
	return sel, nil
}

// NormalizeItems lower-cases, trims, de-duplicates and sorts item names.
func NormalizeItems(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	sort.Strings(out)
	return out
}

// ============================================================================
// HOUR LABELS
// ============================================================================

// FormatHour renders an hour of day on a 12-hour clock: 9 → "9 AM",
// 12 → "12 PM", 13 → "1 PM", 0 and 24 → "12 AM".
func FormatHour(h int) string {
	h = ((h % 24) + 24) % 24
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

func parseHour(s string) (int, bool) {
	h, err := strconv.Atoi(s)
	return h, err == nil
}
