package loading

import "github.com/goliatone/go-loading/internal/runtimeconfig"

var (
	ErrDefaultsInvalid         = runtimeconfig.ErrDefaultsInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrIDStrategyUnknown       = runtimeconfig.ErrIDStrategyUnknown
	ErrCatalogDirRequired      = runtimeconfig.ErrCatalogDirRequired
	ErrThemeDirRequired        = runtimeconfig.ErrThemeDirRequired
	ErrCommandsConfigInvalid   = runtimeconfig.ErrCommandsConfigInvalid
)

type (
	Config         = runtimeconfig.Config
	DefaultsConfig = runtimeconfig.DefaultsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	IDConfig       = runtimeconfig.IDConfig
	CatalogConfig  = runtimeconfig.CatalogConfig
	ThemeConfig    = runtimeconfig.ThemeConfig
	CommandsConfig = runtimeconfig.CommandsConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
