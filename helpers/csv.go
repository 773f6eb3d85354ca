package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/shopspring/decimal"

	"github.com/sushantpadha/restaurant-sales/engine"
	"github.com/sushantpadha/restaurant-sales/schema"
)

// ============================================================================
// CSV LOADERS: sales.csv and food_items.csv into typed rows
// ============================================================================
// Headers are mapped through the schema so column order does not matter and
// extra columns are ignored. A row that cannot be parsed fails the whole
// file: the analysis is only meaningful over complete data.
// ============================================================================

var log = logging.MustGetLogger("log")

var ErrEmptyFile = errors.New("file has no header row")

// InputFileError reports a catalog or sales file that could not be read or
// parsed.
type InputFileError struct {
	Path string
	Err  error
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("error in reading %s: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error { return e.Err }

// LoadCatalog reads and parses the food item catalog at path.
func LoadCatalog(path string) ([]engine.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	items, err := ParseCatalog(data)
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	log.Infof("Loaded %d food items from %s", len(items), path)
	return items, nil
}

// LoadSales reads and parses the sales log at path.
func LoadSales(path string) ([]engine.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	sales, err := ParseSales(data)
	if err != nil {
		return nil, &InputFileError{Path: path, Err: err}
	}
	log.Infof("Loaded %d sales rows from %s", len(sales), path)
	return sales, nil
}

// ParseCatalog parses catalog CSV bytes. Item names are trimmed and
// lower-cased; a repeated name keeps its first row.
func ParseCatalog(data []byte) ([]engine.MenuItem, error) {
	sch := schema.Catalog()
	var items []engine.MenuItem
	seen := make(map[string]bool)

	err := readRows(data, sch, func(line int, get func(string) string) error {
		price, err := decimal.NewFromString(get("price"))
		if err != nil {
			return fmt.Errorf("line %d: invalid price %q", line, get("price"))
		}
		item := engine.MenuItem{
			Name:     strings.ToLower(get("food_item")),
			Category: strings.ToLower(get("food_category")),
			FoodType: engine.FoodType(strings.ToLower(get("food_type"))),
			Price:    price,
		}
		if item.Name == "" {
			return fmt.Errorf("line %d: empty food_item", line)
		}
		if seen[item.Name] {
			log.Warningf("food_items line %d: duplicate item %q ignored", line, item.Name)
			return nil
		}
		warnUnexpected(sch, line, map[string]string{"food_type": string(item.FoodType)}, map[string]float64{"price": price.InexactFloat64()})
		seen[item.Name] = true
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ParseSales parses sales CSV bytes.
func ParseSales(data []byte) ([]engine.Transaction, error) {
	sch := schema.Sales()
	var sales []engine.Transaction

	err := readRows(data, sch, func(line int, get func(string) string) error {
		nums := make(map[string]int, 3)
		for _, key := range []string{"time", "day", "quantity"} {
			n, err := parseInt(get(key))
			if err != nil {
				return fmt.Errorf("line %d: invalid %s %q", line, key, get(key))
			}
			nums[key] = n
		}
		tx := engine.Transaction{
			FoodItem:  strings.ToLower(get("food_item")),
			Time:      nums["time"],
			Day:       nums["day"],
			OrderType: engine.OrderType(strings.ToLower(get("order_type"))),
			Quantity:  nums["quantity"],
		}
		warnUnexpected(sch, line,
			map[string]string{"order_type": string(tx.OrderType)},
			map[string]float64{"time": float64(tx.Time), "day": float64(tx.Day), "quantity": float64(tx.Quantity)})
		sales = append(sales, tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// readRows maps the header through the schema and calls fn per data row
// with a column getter. line is 1-based and counts the header.
func readRows(data []byte, sch schema.Config, fn func(line int, get func(string) string) error) error {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return ErrEmptyFile
	}
	if err != nil {
		return fmt.Errorf("failed to read CSV headers: %w", err)
	}

	cols, err := sch.MapHeaders(headers)
	if err != nil {
		return err
	}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		get := func(key string) string {
			return strings.TrimSpace(row[cols[key]])
		}
		if err := fn(line, get); err != nil {
			return err
		}
	}
	return nil
}

// parseInt accepts "1230" as well as "1230.0" as written by spreadsheet
// exports.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// warnUnexpected logs values outside the schema's enums or bounds. Such rows
// are kept; they simply fall outside the analysis domain.
func warnUnexpected(sch schema.Config, line int, dims map[string]string, meas map[string]float64) {
	for key, v := range dims {
		if d, ok := sch.Dimension(key); ok && !d.IsAllowed(v) {
			log.Warningf("%s line %d: unexpected %s %q", sch.Name, line, key, v)
		}
	}
	for key, v := range meas {
		if m, ok := sch.Measure(key); ok && !m.InRange(v) {
			log.Warningf("%s line %d: %s %v out of range", sch.Name, line, key, v)
		}
	}
}
