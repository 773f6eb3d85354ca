package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantpadha/restaurant-sales/engine"
)

var foodItemsCSV = []byte(`food_item,food_category,food_type,price
burger,mains,non-veg,5.50
fries,sides,veg,2
coke,drinks,veg,1.50
`)

var salesCSV = []byte(`food_item,time,day,order_type,quantity
burger,1230,1,dine,2
burger,1250,1,delivery,1
fries,930,2,dine,3
coke,2055,6,delivery,4
burger,1350,3,dine,1
`)

func writeInputs(t *testing.T) (dir, sales, catalog string) {
	t.Helper()
	dir = t.TempDir()
	sales = filepath.Join(dir, "sales.csv")
	catalog = filepath.Join(dir, "food_items.csv")
	require.NoError(t, os.WriteFile(sales, salesCSV, 0o644))
	require.NoError(t, os.WriteFile(catalog, foodItemsCSV, 0o644))
	return dir, sales, catalog
}

func TestRunNonInteractive(t *testing.T) {
	dir, sales, catalog := writeInputs(t)
	chart := filepath.Join(dir, "chart.png")
	export := filepath.Join(dir, "matrix.csv")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs([]string{
		"--no-prompt", "--log-level", "ERROR",
		"--sales-file", sales, "--catalog-file", catalog,
		"--chart-file", chart, "--export-file", export,
		"--axis", "0", "--group", "4", "--items", "burger",
	})
	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Compiled sales data:")
	assert.Contains(t, text, "Busiest Hour: 12 PM (3 orders)")
	assert.Contains(t, text, "Most orders of 'Burger' during: 12 PM (3 orders)")
	assert.NotContains(t, text, "Press Enter to see plot.")

	_, err := os.Stat(chart)
	assert.NoError(t, err)
	data, err := os.ReadFile(export)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "hour,burger\n9,0\n"))
}

func TestRunEmptyResult(t *testing.T) {
	dir, sales, catalog := writeInputs(t)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"--no-prompt", "--log-level", "ERROR",
		"--sales-file", sales, "--catalog-file", catalog,
		"--chart-file", filepath.Join(dir, "chart.png"), "--export-file", "",
		"--axis", "2", "--items", "pizza",
	})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, engine.ErrEmptyResult)
}
