package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/sushantpadha/restaurant-sales/config"
	"github.com/sushantpadha/restaurant-sales/engine"
	"github.com/sushantpadha/restaurant-sales/helpers"
	"github.com/sushantpadha/restaurant-sales/render"
	"github.com/sushantpadha/restaurant-sales/selector"
)

// ============================================================================
// RESTAURANT SALES CLI
// ============================================================================

const version = "1.0.0"

var log = logging.MustGetLogger("log")

var (
	configFile string
	axisFlag   int
	groupFlag  int
	chartFlag  int
	itemsFlag  string
	noPrompt   bool

	rootCmd = &cobra.Command{
		Use:     "restaurant-sales",
		Short:   "Analyze, tabulate and visualize restaurant sales data",
		Version: version,
		Long: `Reads the sales log and the food item catalog, asks how to slice the data
(per hour, per weekday or per food item, optionally grouped), prints the
compiled table with its highlights and writes a line or stacked bar chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	f := rootCmd.Flags()
	f.StringVar(&configFile, "config", "", "JSON config file (default config.json if present)")
	f.String("sales-file", config.DefaultSalesFile, "sales CSV")
	f.String("catalog-file", config.DefaultCatalogFile, "food item catalog CSV")
	f.String("chart-file", config.DefaultChartFile, "chart output; format follows the extension")
	f.String("export-file", "", "also write the matrix (.csv) or full result (.json)")
	f.String("log-level", "INFO", "DEBUG, INFO, NOTICE, WARNING, ERROR or CRITICAL")
	f.String("measure", "quantity", "value to sum: quantity or revenue")
	f.Int("top-n", 3, "dishes listed when plotting per food item")

	f.IntVar(&axisFlag, "axis", 0, "0 per hour, 1 per weekday, 2 per food item")
	f.IntVar(&groupFlag, "group", 0, "0 none, 1 category, 2 order type, 3 food type, 4 food item")
	f.IntVar(&chartFlag, "chart", 0, "0 line, 1 stacked bar")
	f.StringVar(&itemsFlag, "items", "", "comma separated food item names or indexes")
	f.BoolVar(&noPrompt, "no-prompt", false, "never read stdin; unanswered choices take their defaults")
}

// InitLogger Receives the log level to be set in go-logging as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	baseBackend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006-01-02 15:04:05} %{level:.5s}     %{message}`,
	)
	backendFormatter := logging.NewBackendFormatter(baseBackend, format)

	backendLeveled := logging.AddModuleLevel(backendFormatter)
	logLevelCode, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	backendLeveled.SetLevel(logLevelCode, "")

	logging.SetBackend(backendLeveled)
	return nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.InitConfig(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	log.Debugf("Config: %+v", cfg)

	out := cmd.OutOrStdout()
	greet(out)

	catalog, err := helpers.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return err
	}
	sales, err := helpers.LoadSales(cfg.SalesFile)
	if err != nil {
		return err
	}
	view := engine.NewEnrichedView(engine.Join(sales, catalog))

	prompter := selector.NewPrompter(cmd.InOrStdin(), out)
	sel, err := prompter.Menu(catalog, presetFrom(cmd))
	if err != nil {
		return err
	}

	result, err := engine.Execute(view, sel,
		engine.WithMeasure(cfg.Measure),
		engine.WithTopN(cfg.TopN),
		engine.WithOpeningHours(cfg.OpeningHour, cfg.ClosingHour),
	)
	if err != nil {
		return err
	}

	printReport(out, result)

	if cfg.ExportFile != "" {
		if err := render.ExportFile(result, cfg.ExportFile); err != nil {
			return err
		}
	}

	if !noPrompt {
		if err := prompter.Pause("Press Enter to see plot."); err != nil {
			return err
		}
	}
	if err := render.SaveChart(result.Chart, cfg.ChartFile, cfg.ChartWidth, cfg.ChartHeight); err != nil {
		return err
	}
	fmt.Fprintf(out, "Chart saved to %s\n", cfg.ChartFile)
	return nil
}

// presetFrom collects selection flags that were set explicitly. With
// --no-prompt every missing answer falls back to its flag default.
func presetFrom(cmd *cobra.Command) selector.Preset {
	var p selector.Preset
	changed := cmd.Flags().Changed
	if noPrompt || changed("axis") {
		p.Axis = &axisFlag
	}
	if noPrompt || changed("group") {
		p.Group = &groupFlag
	}
	if noPrompt || changed("chart") {
		p.Chart = &chartFlag
	}
	if noPrompt || changed("items") {
		p.Items = &itemsFlag
	}
	return p
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportFatal(err)
		os.Exit(1)
	}
}

func reportFatal(err error) {
	var inputErr *helpers.InputFileError
	switch {
	case errors.Is(err, engine.ErrEmptyResult):
		fmt.Fprintln(os.Stderr, "\n\n<< Invalid data analysis request. No data left to analyze under given conditions. Please try again. >>")
		log.Debugf("%v", err)
	case errors.As(err, &inputErr):
		fmt.Fprintln(os.Stderr, "Error in reading csv files")
		fmt.Fprintln(os.Stderr, inputErr)
	case errors.Is(err, selector.ErrNoInput):
		fmt.Fprintln(os.Stderr, "\nNo input, exiting.")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
