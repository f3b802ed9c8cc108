package winepage

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
)

// Environment variables. They override the built-in defaults and are
// themselves overridden by command line flags.
const (
	EnvExcelFile      = "WINE_EXCEL_FILE"
	EnvTemplateFile   = "WINE_TEMPLATE_FILE"
	EnvOutputFile     = "WINE_OUTPUT_FILE"
	EnvFoundationYear = "WINE_FOUNDATION_YEAR"
)

// Config is the resolved run configuration. It is built once by
// Resolve and not modified afterwards.
type Config struct {
	ExcelFile      string
	TemplateFile   string
	OutputFile     string
	FoundationYear int
	CurrentYear    int
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ExcelFile:      "wine_price_list.xlsx",
		TemplateFile:   "template.html",
		OutputFile:     "index.html",
		FoundationYear: 1920,
	}
}

// FromEnv reads the configuration layer from environment variables.
// Unset variables leave the corresponding field zero.
func FromEnv() (Config, error) {
	cfg := Config{
		ExcelFile:    os.Getenv(EnvExcelFile),
		TemplateFile: os.Getenv(EnvTemplateFile),
		OutputFile:   os.Getenv(EnvOutputFile),
	}
	if v := os.Getenv(EnvFoundationYear); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %v", EnvFoundationYear, err)
		}
		cfg.FoundationYear = year
	}
	return cfg, nil
}

// Resolve layers the configuration: defaults, then environment, then
// flags, highest priority last. CurrentYear comes from the system
// clock unless the caller pinned it in flags.
func Resolve(flags Config) (Config, error) {
	cfg := Defaults()
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := mergo.Merge(&cfg, env, mergo.WithOverride); err != nil {
		return Config{}, err
	}
	if err := mergo.Merge(&cfg, flags, mergo.WithOverride); err != nil {
		return Config{}, err
	}
	if cfg.CurrentYear == 0 {
		cfg.CurrentYear = time.Now().Year()
	}
	return cfg, nil
}
