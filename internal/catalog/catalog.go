package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/spinner"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// DefaultPattern matches catalog files.
const DefaultPattern = "*.md"

// Config configures catalog discovery.
type Config struct {
	// Pattern is matched against file base names. Defaults to "*.md".
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Catalog keeps loaded definitions by canonical name.
type Catalog struct {
	fs        fs.FS
	pattern   string
	recursive bool
	markdown  goldmark.Markdown
	logger    interfaces.Logger

	mu          sync.RWMutex
	definitions map[string]Definition
}

// New returns a catalog reading from filesystem.
func New(filesystem fs.FS, cfg Config, logger interfaces.Logger) *Catalog {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &Catalog{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
		markdown: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		logger:      logging.Ensure(logger),
		definitions: map[string]Definition{},
	}
}

// Load parses every matching file. Files are read in lexical order, so a
// later file replaces an earlier one with the same name.
func (c *Catalog) Load(ctx context.Context) ([]Definition, error) {
	if c.fs == nil {
		return nil, nil
	}

	paths, err := c.discover()
	if err != nil {
		return nil, err
	}

	loaded := make([]Definition, 0, len(paths))
	for _, p := range paths {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		source, err := fs.ReadFile(c.fs, p)
		if err != nil {
			return nil, fmt.Errorf("catalog read %s: %w", p, err)
		}
		def, err := Parse(p, source, c.markdown)
		if err != nil {
			c.logger.Error("catalog.definition.invalid", "path", p, "error", err)
			return nil, err
		}
		loaded = append(loaded, *def)
		c.logger.Debug("catalog.definition.loaded", "path", p, "name", def.Name, "kind", def.Kind)
	}

	c.mu.Lock()
	for _, def := range loaded {
		c.definitions[def.Name] = def
	}
	c.mu.Unlock()

	c.logger.Info("catalog.loaded", "definitions", len(loaded))
	return loaded, nil
}

// Register adds a factory for every loaded definition to registry.
func (c *Catalog) Register(registry *spinner.Registry) {
	if registry == nil {
		return
	}
	for _, def := range c.Definitions() {
		registry.Register(def.Name, def.Variant)
	}
}

// Definition returns the definition stored under name.
func (c *Catalog) Definition(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.definitions[spinner.CanonicalName(name)]
	return def, ok
}

// Definitions returns the loaded definitions sorted by name.
func (c *Catalog) Definitions() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Definition, 0, len(c.definitions))
	for _, def := range c.definitions {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalog) discover() ([]string, error) {
	var paths []string
	err := fs.WalkDir(c.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && !c.recursive {
				return fs.SkipDir
			}
			return nil
		}
		matched, err := path.Match(c.pattern, d.Name())
		if err != nil {
			return fmt.Errorf("catalog pattern %q: %w", c.pattern, err)
		}
		if matched {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
