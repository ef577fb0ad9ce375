package di

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-loading/internal/catalog"
	spinnerscmd "github.com/goliatone/go-loading/internal/commands/spinners"
	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/internal/identity"
	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/logging/console"
	"github.com/goliatone/go-loading/internal/logging/gologger"
	"github.com/goliatone/go-loading/internal/render"
	"github.com/goliatone/go-loading/internal/runtimeconfig"
	"github.com/goliatone/go-loading/internal/spinner"
	"github.com/goliatone/go-loading/internal/theming"
	"github.com/goliatone/go-loading/internal/validation"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Container wires the module services from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider  interfaces.LoggerProvider
	ids             interfaces.IDGenerator
	palette         interfaces.Palette
	sanitizer       interfaces.MarkupSanitizer
	themeLoader     theming.ManifestLoader
	catalogFS       fs.FS
	commandRegistry spinnerscmd.CommandRegistry

	renderer  *render.Renderer
	registry  *spinner.Registry
	catalog   *catalog.Catalog
	validator *validation.StateValidator
	hub       *hub.Hub
	commands  *spinnerscmd.RegistrationResult
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithIDGenerator overrides the generator selected by Config.IDs.
func WithIDGenerator(ids interfaces.IDGenerator) Option {
	return func(c *Container) {
		c.ids = ids
	}
}

// WithPalette overrides the theme palette.
func WithPalette(palette interfaces.Palette) Option {
	return func(c *Container) {
		c.palette = palette
	}
}

// WithSanitizer overrides the markup sanitizer shared by all widgets.
func WithSanitizer(s interfaces.MarkupSanitizer) Option {
	return func(c *Container) {
		c.sanitizer = s
	}
}

// WithThemeLoader overrides how theme manifests are read.
func WithThemeLoader(loader theming.ManifestLoader) Option {
	return func(c *Container) {
		c.themeLoader = loader
	}
}

// WithCatalogFS reads catalog files from filesystem instead of Config.Catalog.Dir.
func WithCatalogFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.catalogFS = filesystem
	}
}

// WithCommandRegistry records the command handlers with registry.
func WithCommandRegistry(registry spinnerscmd.CommandRegistry) Option {
	return func(c *Container) {
		c.commandRegistry = registry
	}
}

// NewContainer validates cfg and builds every enabled service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureIDs()
	c.configureRenderer()
	if err := c.configurePalette(); err != nil {
		return nil, err
	}
	if err := c.configureRegistry(); err != nil {
		return nil, err
	}
	if err := c.configureHub(); err != nil {
		return nil, err
	}
	if err := c.configureCommands(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "loading").Debug("container.configured",
		"variants", len(c.registry.Names()),
		"commands", c.commands != nil,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	logCfg := c.Config.Logging
	if !logCfg.Enabled {
		c.loggerProvider = nil
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("configure go-logger provider: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureIDs() {
	if c.ids != nil {
		return
	}
	if strings.EqualFold(strings.TrimSpace(c.Config.IDs.Strategy), runtimeconfig.IDStrategyDeterministic) {
		c.ids = identity.Deterministic(c.Config.IDs.Namespace, c.Config.IDs.Prefix)
		return
	}
	c.ids = identity.Random(c.Config.IDs.Prefix)
}

func (c *Container) configureRenderer() {
	if c.sanitizer == nil {
		c.renderer = render.NewRenderer()
		return
	}
	c.renderer = render.NewRenderer(render.WithSanitizer(c.sanitizer))
}

func (c *Container) configurePalette() error {
	var base interfaces.Palette = c.palette
	if base == nil && c.Config.Themes.Enabled {
		themes := c.Config.Themes
		palette, err := theming.LoadPalette(theming.Config{
			Dir:             themes.Dir,
			Name:            themes.Name,
			Variant:         themes.Variant,
			ColorToken:      themes.ColorToken,
			BackgroundToken: themes.BackgroundToken,
		}, c.themeLoader)
		if err != nil {
			return fmt.Errorf("configure theme palette: %w", err)
		}
		base = palette
	}
	c.palette = configPalette{
		inner:      base,
		color:      strings.TrimSpace(c.Config.Defaults.Color),
		background: strings.TrimSpace(c.Config.Defaults.BackgroundColor),
	}
	return nil
}

func (c *Container) configureRegistry() error {
	c.registry = spinner.NewDefaultRegistry()
	if !c.Config.Catalog.Enabled {
		return nil
	}
	filesystem := c.catalogFS
	if filesystem == nil {
		filesystem = os.DirFS(c.Config.Catalog.Dir)
	}
	c.catalog = catalog.New(filesystem, catalog.Config{
		Pattern:   c.Config.Catalog.Pattern,
		Recursive: c.Config.Catalog.Recursive,
	}, logging.CatalogLogger(c.loggerProvider))
	if _, err := c.catalog.Load(context.Background()); err != nil {
		return fmt.Errorf("load spinner catalog: %w", err)
	}
	c.catalog.Register(c.registry)
	return nil
}

func (c *Container) configureHub() error {
	validator, err := validation.NewStateValidator()
	if err != nil {
		return fmt.Errorf("compile widget state schema: %w", err)
	}
	c.validator = validator
	c.hub = hub.New(c.registry,
		hub.WithLogger(logging.HubLogger(c.loggerProvider)),
		hub.WithValidator(validator),
		hub.WithWidgetOptions(c.WidgetOptions()...),
	)
	return nil
}

func (c *Container) configureCommands() error {
	if !c.Config.Commands.Enabled {
		return nil
	}
	result, err := spinnerscmd.Register(c.hub, spinnerscmd.RegistrationOptions{
		Registry:       c.commandRegistry,
		LoggerProvider: c.loggerProvider,
		Timeout:        c.Config.Commands.Timeout,
		Dispatch:       c.Config.Commands.AutoRegisterDispatcher,
		MaxRetries:     c.Config.Commands.MaxRetries,
	})
	if err != nil {
		return fmt.Errorf("register spinner commands: %w", err)
	}
	c.commands = result
	return nil
}

// WidgetOptions returns the options every module widget is built with.
func (c *Container) WidgetOptions() []spinner.Option {
	opts := []spinner.Option{
		spinner.WithIDGenerator(c.ids),
		spinner.WithLogger(logging.SpinnerLogger(c.loggerProvider)),
		spinner.WithRenderer(c.renderer),
		spinner.WithPalette(c.palette),
	}
	if size := c.Config.Defaults.Size; size > 0 {
		opts = append(opts, spinner.WithSize(size))
	}
	return opts
}

// LoggerProvider returns the configured provider, which may be nil when
// logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }

// Registry returns the variant registry.
func (c *Container) Registry() *spinner.Registry { return c.registry }

// Catalog returns the loaded catalog, or nil when the catalog is disabled.
func (c *Container) Catalog() *catalog.Catalog { return c.catalog }

// Hub returns the live widget hub.
func (c *Container) Hub() *hub.Hub { return c.hub }

// Validator returns the widget state validator.
func (c *Container) Validator() *validation.StateValidator { return c.validator }

// Commands returns the registered command handlers, or nil when commands are
// disabled.
func (c *Container) Commands() *spinnerscmd.RegistrationResult { return c.commands }

// Close tears down dispatcher subscriptions.
func (c *Container) Close() {
	if c.commands != nil {
		c.commands.Unsubscribe()
	}
}

// configPalette applies configured colors before falling back to the
// wrapped palette and the variant default.
type configPalette struct {
	inner      interfaces.Palette
	color      string
	background string
}

func (p configPalette) Color(fallback string) string {
	if p.color != "" {
		return p.color
	}
	if p.inner != nil {
		return p.inner.Color(fallback)
	}
	return fallback
}

func (p configPalette) BackgroundColor(fallback string) string {
	if p.background != "" {
		return p.background
	}
	if p.inner != nil {
		return p.inner.BackgroundColor(fallback)
	}
	return fallback
}
