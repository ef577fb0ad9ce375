// Package theming resolves spinner color defaults from go-theme manifests.
package theming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Default token keys read by a Palette.
const (
	DefaultColorToken      = "spinner.color"
	DefaultBackgroundToken = "spinner.background"
)

// Config selects the theme used for palette defaults.
type Config struct {
	Dir             string
	Name            string
	Variant         string
	ColorToken      string
	BackgroundToken string
}

// TokenSource exposes resolved design tokens. *gotheme.Selection satisfies it.
type TokenSource interface {
	Tokens() map[string]string
}

// Palette implements interfaces.Palette on top of theme tokens. Missing or
// blank tokens fall back to the caller's default.
type Palette struct {
	tokens        map[string]string
	colorKey      string
	backgroundKey string
}

// NewPalette snapshots the tokens of src.
func NewPalette(src TokenSource, colorKey, backgroundKey string) *Palette {
	tokens := map[string]string{}
	if src != nil {
		for k, v := range src.Tokens() {
			tokens[k] = v
		}
	}
	if strings.TrimSpace(colorKey) == "" {
		colorKey = DefaultColorToken
	}
	if strings.TrimSpace(backgroundKey) == "" {
		backgroundKey = DefaultBackgroundToken
	}
	return &Palette{tokens: tokens, colorKey: colorKey, backgroundKey: backgroundKey}
}

func (p *Palette) Color(fallback string) string {
	return p.lookup(p.colorKey, fallback)
}

func (p *Palette) BackgroundColor(fallback string) string {
	return p.lookup(p.backgroundKey, fallback)
}

func (p *Palette) lookup(key, fallback string) string {
	if p == nil {
		return fallback
	}
	if value := strings.TrimSpace(p.tokens[key]); value != "" {
		return value
	}
	return fallback
}

var _ interfaces.Palette = (*Palette)(nil)

// ManifestLoader reads a theme manifest from a directory.
type ManifestLoader interface {
	Load(dir string) (*gotheme.Manifest, error)
}

// FSManifestLoader loads manifests from the local filesystem.
type FSManifestLoader struct{}

func (FSManifestLoader) Load(dir string) (*gotheme.Manifest, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("theme directory required")
	}
	return gotheme.LoadDir(os.DirFS(filepath.Clean(trimmed)), ".")
}

// Selector registers manifests and resolves palettes from them.
type Selector struct {
	registry       *gotheme.MemoryRegistry
	loader         ManifestLoader
	defaultTheme   string
	defaultVariant string

	mu     sync.Mutex
	loaded map[string]*gotheme.Manifest
}

// NewSelector returns a selector defaulting to cfg.Name and cfg.Variant.
func NewSelector(cfg Config, loader ManifestLoader) *Selector {
	if loader == nil {
		loader = FSManifestLoader{}
	}
	return &Selector{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		defaultTheme:   strings.TrimSpace(cfg.Name),
		defaultVariant: strings.TrimSpace(cfg.Variant),
		loaded:         map[string]*gotheme.Manifest{},
	}
}

// Load registers the manifest in dir once. name overrides a blank
// manifest name.
func (s *Selector) Load(dir, name string) (*gotheme.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if manifest, ok := s.loaded[dir]; ok {
		return manifest, nil
	}

	manifest, err := s.loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", dir, err)
	}
	if manifest == nil {
		return nil, fmt.Errorf("load theme manifest from %s: empty manifest", dir)
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" {
		normalized.Name = strings.TrimSpace(name)
	}
	if normalized.Name == "" {
		return nil, fmt.Errorf("theme name required for manifest registration")
	}
	if err := s.registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.loaded[dir] = &normalized
	return &normalized, nil
}

// Select resolves a theme selection, using the configured defaults for
// blank arguments.
func (s *Selector) Select(theme, variant string) (*gotheme.Selection, error) {
	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}
	if strings.TrimSpace(theme) == "" {
		theme = s.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = s.defaultVariant
	}
	selection, err := selector.Select(theme, variant)
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", theme, err)
	}
	return selection, nil
}

// LoadPalette loads cfg.Dir and returns the palette for the configured
// theme and variant.
func LoadPalette(cfg Config, loader ManifestLoader) (*Palette, error) {
	selector := NewSelector(cfg, loader)
	manifest, err := selector.Load(cfg.Dir, cfg.Name)
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(manifest.Name, cfg.Variant)
	if err != nil {
		return nil, err
	}
	return NewPalette(selection, cfg.ColorToken, cfg.BackgroundToken), nil
}
