package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sushantpadha/restaurant-sales/engine"
)

const banner = `
  ____           _                              _     ____        _
 |  _ \ ___  ___| |_ __ _ _   _ _ __ __ _ _ __ | |_  / ___|  __ _| | ___  ___
 | |_) / _ \/ __| __/ _' | | | | '__/ _' | '_ \| __| \___ \ / _' | |/ _ \/ __|
 |  _ <  __/\__ \ || (_| | |_| | | | (_| | | | | |_   ___) | (_| | |  __/\__ \
 |_| \_\___||___/\__\__,_|\__,_|_|  \__,_|_| |_|\__| |____/ \__,_|_|\___||___/


        Use this program to analyze, tabulate and visualize data on restaurant sales.
        Perform sales analysis by choosing from the below mentioned options:

(Type number for desired option, or simply press enter to use default option)
`

func greet(w io.Writer) {
	fmt.Fprint(w, banner+"\n")
}

func rule(w io.Writer, c string) {
	fmt.Fprintln(w, strings.Repeat(c, 72))
}

func printReport(w io.Writer, result *engine.Result) {
	rule(w, "-")
	fmt.Fprintf(w, "%s:\n", result.Table.Title)
	rule(w, "-")
	fmt.Fprint(w, engine.RenderTable(result.Table))
	rule(w, "-")
	fmt.Fprintln(w, "Sales data highlights:")
	rule(w, "-")
	fmt.Fprint(w, engine.RenderHighlights(result.Highlights))
	rule(w, "-")
}
