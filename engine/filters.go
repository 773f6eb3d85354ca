package engine

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// ============================================================================
// FILTERS: Food item allow-list
// ============================================================================
// Single pass over the view; matching row positions go into a bitmap and
// come back out as a SubView. No row is copied.
// ============================================================================

// ApplyItemFilter returns a view of the rows whose food_item is in items.
// A nil allow-list means no restriction and returns the view unchanged.
func ApplyItemFilter(view RecordView, items []string) RecordView {
	if items == nil {
		return view
	}

	allowed := toLowerSet(items)
	matched := roaring.New()
	for i := 0; i < view.Len(); i++ {
		if allowed[strings.ToLower(view.Dimension(i, "food_item"))] {
			matched.Add(uint32(i))
		}
	}

	indices := make([]int, 0, matched.GetCardinality())
	it := matched.Iterator()
	for it.HasNext() {
		indices = append(indices, int(it.Next()))
	}

	log.Debugf("ApplyItemFilter: %d of %d rows match %d items", len(indices), view.Len(), len(items))
	return newSubView(view, indices)
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
