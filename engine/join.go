package engine

import "strings"

// ============================================================================
// JOINER: Sales ⋈ Catalog on food_item
// ============================================================================

// Join inner-joins sales with the catalog on the food item name. Sales rows
// whose item is missing from the catalog are dropped. Output keeps the sales
// order.
func Join(sales []Transaction, catalog []MenuItem) []EnrichedTransaction {
	byName := make(map[string]MenuItem, len(catalog))
	for _, it := range catalog {
		key := strings.ToLower(it.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = it
		}
	}

	out := make([]EnrichedTransaction, 0, len(sales))
	dropped := 0
	for _, tx := range sales {
		item, ok := byName[strings.ToLower(tx.FoodItem)]
		if !ok {
			dropped++
			continue
		}
		out = append(out, EnrichedTransaction{Transaction: tx, Item: item})
	}

	if dropped > 0 {
		log.Warningf("Join: %d sales rows reference items missing from the catalog", dropped)
	}
	log.Debugf("Join: %d enriched rows from %d sales x %d catalog items", len(out), len(sales), len(catalog))
	return out
}
