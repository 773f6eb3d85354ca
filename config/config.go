package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultConfigFile  = "config.json"
	DefaultSalesFile   = "data/sales.csv"
	DefaultCatalogFile = "data/food_items.csv"
	DefaultChartFile   = "sales_analysis.png"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application's configuration structure.
type Config struct {
	SalesFile   string  `json:"sales-file" mapstructure:"sales-file"`
	CatalogFile string  `json:"catalog-file" mapstructure:"catalog-file"`
	ChartFile   string  `json:"chart-file" mapstructure:"chart-file"`
	ExportFile  string  `json:"export-file" mapstructure:"export-file"`
	LogLevel    string  `json:"log-level" mapstructure:"log-level"`
	ChartWidth  float64 `json:"chart-width" mapstructure:"chart-width"`   // inches
	ChartHeight float64 `json:"chart-height" mapstructure:"chart-height"` // inches
	TopN        int     `json:"top-n" mapstructure:"top-n"`
	Measure     string  `json:"measure" mapstructure:"measure"`
	OpeningHour int     `json:"opening-hour" mapstructure:"opening-hour"`
	ClosingHour int     `json:"closing-hour" mapstructure:"closing-hour"`
}

// field: default value
var optionalFields = map[string]interface{}{
	"sales-file":   DefaultSalesFile,
	"catalog-file": DefaultCatalogFile,
	"chart-file":   DefaultChartFile,
	"export-file":  "",
	"log-level":    "INFO",
	"chart-width":  8.0,
	"chart-height": 5.0,
	"top-n":        3,
	"measure":      "quantity",
	"opening-hour": 9,
	"closing-hour": 21,
}

// InitConfig reads configuration from a JSON file, environment variables and
// command line flags, in increasing order of precedence. A missing config
// file is not an error unless it was asked for explicitly.
func InitConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile
	}
	v.SetConfigFile(configFile)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for field, defaultValue := range optionalFields {
		v.SetDefault(field, defaultValue)
		v.BindEnv(field)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("could not bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// ignore error if config file is not found
		// as we can get all config from defaults, env vars and flags
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks values the loaders and the engine cannot recover from.
func (c *Config) Validate() error {
	if c.SalesFile == "" || c.CatalogFile == "" {
		return fmt.Errorf("%w: sales-file and catalog-file are required", ErrInvalidConfig)
	}
	switch c.Measure {
	case "quantity", "revenue":
	default:
		return fmt.Errorf("%w: measure must be quantity or revenue, got %q", ErrInvalidConfig, c.Measure)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("%w: top-n must be positive", ErrInvalidConfig)
	}
	if c.OpeningHour < 0 || c.ClosingHour > 24 || c.OpeningHour > c.ClosingHour {
		return fmt.Errorf("%w: opening hours %d-%d", ErrInvalidConfig, c.OpeningHour, c.ClosingHour)
	}
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("%w: chart size must be positive", ErrInvalidConfig)
	}
	return nil
}
