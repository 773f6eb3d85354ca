package engine

import "github.com/shopspring/decimal"

// ============================================================================
// TEST FIXTURES
// ============================================================================

var testCatalog = []MenuItem{
	{Name: "burger", Category: "mains", FoodType: FoodTypeNonVeg, Price: decimal.RequireFromString("5.50")},
	{Name: "fries", Category: "sides", FoodType: FoodTypeVeg, Price: decimal.RequireFromString("2")},
	{Name: "coke", Category: "drinks", FoodType: FoodTypeVeg, Price: decimal.RequireFromString("1.50")},
	{Name: "paneer wrap", Category: "mains", FoodType: FoodTypeVeg, Price: decimal.RequireFromString("4")},
}

// Hours after bucketing: 12, 12, 9, 21, 13, 14, -, 23.
var testSales = []Transaction{
	{FoodItem: "burger", Time: 1230, Day: 1, OrderType: OrderTypeDine, Quantity: 2},
	{FoodItem: "Burger", Time: 1250, Day: 1, OrderType: OrderTypeDelivery, Quantity: 1},
	{FoodItem: "fries", Time: 930, Day: 2, OrderType: OrderTypeDine, Quantity: 3},
	{FoodItem: "coke", Time: 2055, Day: 6, OrderType: OrderTypeDelivery, Quantity: 4},
	{FoodItem: "paneer wrap", Time: 1345, Day: 3, OrderType: OrderTypeDine, Quantity: 2},
	{FoodItem: "burger", Time: 1350, Day: 3, OrderType: OrderTypeDine, Quantity: 1},
	{FoodItem: "pizza", Time: 1200, Day: 1, OrderType: OrderTypeDine, Quantity: 5},
	{FoodItem: "fries", Time: 2300, Day: 4, OrderType: OrderTypeDine, Quantity: 1},
}

func testView() RecordView {
	return NewEnrichedView(Join(testSales, testCatalog))
}

func mustSelection(axis, group, chart int, items ...string) Selection {
	sel, err := NewSelection(axis, group, chart, items)
	if err != nil {
		panic(err)
	}
	return sel
}

// row returns the cells of the row keyed by key, or nil.
func row(m *Matrix, key string) []float64 {
	for i, k := range m.Rows {
		if k == key {
			return m.Cells[i]
		}
	}
	return nil
}
