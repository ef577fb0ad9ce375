package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrDefaultsInvalid reports unusable widget defaults.
var ErrDefaultsInvalid = errors.New("loading config: widget defaults are invalid")
var ErrLoggingProviderRequired = errors.New("loading config: logging provider is required when logging is enabled")
var ErrLoggingProviderUnknown = errors.New("loading config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("loading config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("loading config: logging format is invalid")
var ErrIDStrategyUnknown = errors.New("loading config: id strategy is invalid")

// ErrCatalogDirRequired indicates the catalog was enabled without a directory.
var ErrCatalogDirRequired = errors.New("loading config: catalog directory is required when the catalog is enabled")

// ErrThemeDirRequired indicates theming was enabled without a manifest directory.
var ErrThemeDirRequired = errors.New("loading config: theme directory is required when themes are enabled")

// ErrCommandsConfigInvalid reports negative command timeouts or retries.
var ErrCommandsConfigInvalid = errors.New("loading config: commands configuration is invalid")

// ID strategies.
const (
	IDStrategyRandom        = "random"
	IDStrategyDeterministic = "deterministic"
)

// Config aggregates widget defaults and adapter bindings for the module.
type Config struct {
	Defaults DefaultsConfig
	Logging  LoggingConfig
	IDs      IDConfig
	Catalog  CatalogConfig
	Themes   ThemeConfig
	Commands CommandsConfig
}

// DefaultsConfig holds module-wide widget defaults. Zero values defer to
// the theme palette and then to the variant's own defaults.
type DefaultsConfig struct {
	Variant         string
	Size            float64
	Color           string
	BackgroundColor string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Enabled   bool
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// IDConfig selects how widget scoping ids are produced.
type IDConfig struct {
	Strategy  string
	Prefix    string
	Namespace string
}

// CatalogConfig controls loading variant definitions from disk.
type CatalogConfig struct {
	Enabled   bool
	Dir       string
	Pattern   string
	Recursive bool
}

// ThemeConfig selects the go-theme manifest supplying color defaults.
type ThemeConfig struct {
	Enabled         bool
	Dir             string
	Name            string
	Variant         string
	ColorToken      string
	BackgroundToken string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
	Timeout                time.Duration
	MaxRetries             int
}

// DefaultConfig returns the defaults: ring widgets with variant defaults,
// logging disabled, random ids.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Variant: "ring",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		IDs: IDConfig{
			Strategy: IDStrategyRandom,
			Prefix:   "a",
		},
		Catalog: CatalogConfig{
			Dir:     "spinners",
			Pattern: "*.md",
		},
		Themes: ThemeConfig{
			Dir:             "themes/default",
			ColorToken:      "spinner.color",
			BackgroundToken: "spinner.background",
		},
		Commands: CommandsConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if err := validation.ValidateStruct(&cfg.Defaults,
		validation.Field(&cfg.Defaults.Variant, validation.Required),
		validation.Field(&cfg.Defaults.Size, validation.Min(0.0)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrDefaultsInvalid, err)
	}

	if cfg.Logging.Enabled {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}

	if err := validation.Validate(normalizeProvider(cfg.IDs.Strategy),
		validation.In("", IDStrategyRandom, IDStrategyDeterministic),
	); err != nil {
		return fmt.Errorf("%w: %s", ErrIDStrategyUnknown, cfg.IDs.Strategy)
	}

	if cfg.Catalog.Enabled && strings.TrimSpace(cfg.Catalog.Dir) == "" {
		return ErrCatalogDirRequired
	}
	if cfg.Themes.Enabled && strings.TrimSpace(cfg.Themes.Dir) == "" {
		return ErrThemeDirRequired
	}

	if err := validation.ValidateStruct(&cfg.Commands,
		validation.Field(&cfg.Commands.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&cfg.Commands.MaxRetries, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrCommandsConfigInvalid, err)
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
