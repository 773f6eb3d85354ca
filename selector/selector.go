// Package selector turns the user's menu answers into an engine.Selection.
//
// Prompts read whole lines from an io.Reader and write to an io.Writer so the
// same code serves a terminal and tests. An empty line always picks the
// stated default; anything else that is not a valid choice is rejected and
// asked again, without a retry limit.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/sushantpadha/restaurant-sales/engine"
)

var log = logging.MustGetLogger("log")

// ErrNoInput is returned when the input closes before a prompt is answered.
var ErrNoInput = errors.New("input closed before a choice was made")

// Prompter asks the menu questions.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Preset holds answers supplied up front (e.g. by flags); nil fields are
// asked interactively.
type Preset struct {
	Axis  *int
	Group *int
	Chart *int
	Items *string
}

// Menu asks for axis, group, items and chart type, skipping questions the
// preset already answers.
func (p *Prompter) Menu(catalog []engine.MenuItem, preset Preset) (engine.Selection, error) {
	axis, err := p.choose(preset.Axis, `Plot sales data
[0] per Hour (default option)
[1] per Weekday
[2] per Food Item`, 0, 2)
	if err != nil {
		return engine.Selection{}, err
	}

	group := 0
	var items []string
	if axis != int(engine.AxisFoodItem) {
		group, err = p.choose(preset.Group, `Group data according to
[0] None (default option)
[1] Food Category
[2] Order Type (dine or delivery)
[3] Food Type (veg or non-veg)
[4] Food Item (any specific food item)`, 0, 4)
		if err != nil {
			return engine.Selection{}, err
		}
	}

	if axis == int(engine.AxisFoodItem) || group == int(engine.GroupItems) {
		if items, err = p.foodItems(catalog, preset.Items); err != nil {
			return engine.Selection{}, err
		}
	}

	chart, err := p.choose(preset.Chart, `Type of graph
[0] Line graph (default option)
[1] (Stacked) Bar graph`, 0, 1)
	if err != nil {
		return engine.Selection{}, err
	}
	p.rule('#')

	return engine.NewSelection(axis, group, chart, items)
}

func (p *Prompter) choose(preset *int, menu string, min, max int) (int, error) {
	if preset != nil {
		return *preset, nil
	}
	p.rule('#')
	fmt.Fprintln(p.out, menu)
	return p.RangeInput("Select option: ", min, max, min)
}

// RangeInput reads an integer in [min, max]; an empty line returns def.
func (p *Prompter) RangeInput(prompt string, min, max, def int) (int, error) {
	fmt.Fprintln(p.out)
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid datatype, please enter an integer.")
			continue
		}
		if v < min || v > max {
			fmt.Fprintln(p.out, "Value out of range please try again.")
			continue
		}
		return v, nil
	}
}

func (p *Prompter) foodItems(catalog []engine.MenuItem, preset *string) ([]string, error) {
	if preset != nil {
		return ResolveItems(*preset, catalog, p.out), nil
	}

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Following %d food items are available at the restaurant:\n\n", len(catalog))
	fmt.Fprint(p.out, CatalogTable(catalog))
	fmt.Fprintln(p.out, "\n\nSelect food item(s) OR index(es) of food item in the list, seperated by commas, press Enter when done.")

	line, err := p.readLine("Enter name or index: ")
	if err != nil {
		return nil, err
	}
	return ResolveItems(line, catalog, p.out), nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *Prompter) rule(c rune) {
	fmt.Fprintln(p.out, strings.Repeat(string(c), 72))
}

// ResolveItems turns a comma-separated list of item names or zero-based
// catalog indexes into sorted, distinct item names. Tokens that match
// nothing are reported on warn and skipped.
func ResolveItems(line string, catalog []engine.MenuItem, warn io.Writer) []string {
	byName := make(map[string]bool, len(catalog))
	for _, it := range catalog {
		byName[it.Name] = true
	}

	seen := make(map[string]bool)
	items := []string{}
	for _, tok := range strings.Split(strings.ToLower(line), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		name := ""
		if byName[tok] {
			name = tok
		} else if idx, err := strconv.Atoi(tok); err == nil && idx >= 0 && idx < len(catalog) {
			name = catalog[idx].Name
		}

		if name == "" {
			fmt.Fprintf(warn, "Value `%s` not in set of possible values. Skipping.\n", tok)
			log.Warningf("Unresolved food item reference %q", tok)
			continue
		}
		if !seen[name] {
			seen[name] = true
			items = append(items, name)
		}
	}

	sort.Strings(items)
	return items
}

// CatalogTable lists the catalog with the index ResolveItems accepts.
func CatalogTable(catalog []engine.MenuItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%5s  %-24s %-16s %-9s %8s\n", "", "Food Item", "Food Category", "Food Type", "Price")
	for i, it := range catalog {
		fmt.Fprintf(&b, "%5d  %-24s %-16s %-9s %8s\n",
			i, it.Name, it.Category, it.FoodType, it.Price.StringFixed(2))
	}
	return b.String()
}
