package main

import (
	"flag"
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-loading"
)

type galleryOptions struct {
	Size  float64
	Color string
}

func main() {
	var (
		out           = flag.String("out", "", "Write the gallery page to this file (defaults to stdout)")
		catalogDir    = flag.String("catalog", "", "Directory of spinner definition files to include")
		size          = flag.Float64("size", 0, "Spinner size in pixels (defaults to each variant's size)")
		color         = flag.String("color", "", "Spinner color (defaults to each variant's color)")
		logLevel      = flag.String("log-level", "", "Enable console logging at this level")
		deterministic = flag.Bool("deterministic", false, "Derive widget ids from the variant name so output is stable")
	)
	flag.Parse()

	cfg := loading.DefaultConfig()
	if dir := strings.TrimSpace(*catalogDir); dir != "" {
		cfg.Catalog.Enabled = true
		cfg.Catalog.Dir = dir
		cfg.Catalog.Recursive = true
	}
	if level := strings.TrimSpace(*logLevel); level != "" {
		cfg.Logging.Enabled = true
		cfg.Logging.Provider = "console"
		cfg.Logging.Level = level
	}
	if *deterministic {
		cfg.IDs.Strategy = "deterministic"
		cfg.IDs.Namespace = "gallery"
	}

	module, err := loading.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}
	defer module.Close()

	page, err := buildGallery(module, galleryOptions{Size: *size, Color: *color})
	if err != nil {
		log.Fatalf("build gallery: %v", err)
	}

	if *out == "" {
		fmt.Fprint(os.Stdout, page)
		return
	}
	if err := os.WriteFile(*out, []byte(page), 0o644); err != nil {
		log.Fatalf("write gallery: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d variants to %s\n", len(module.Variants()), *out)
}

func buildGallery(module *loading.Module, opts galleryOptions) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Spinner gallery</title>\n</head>\n<body>\n")

	catalog := module.Container().Catalog()
	for _, name := range module.Variants() {
		widgetOpts := []loading.Option{}
		if opts.Size > 0 {
			widgetOpts = append(widgetOpts, loading.WithSize(opts.Size))
		}
		if strings.TrimSpace(opts.Color) != "" {
			widgetOpts = append(widgetOpts, loading.WithColor(opts.Color))
		}
		widget, err := module.NewWidget(name, widgetOpts...)
		if err != nil {
			return "", fmt.Errorf("render %s: %w", name, err)
		}

		fmt.Fprintf(&b, "<section id=\"%s\">\n<h2>%s</h2>\n", html.EscapeString(name), html.EscapeString(name))
		if catalog != nil {
			if def, ok := catalog.Definition(name); ok {
				if def.Summary != "" {
					fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(def.Summary))
				}
				b.WriteString(def.DescriptionHTML)
			}
		}
		b.WriteString(widget.Value())
		b.WriteString("</section>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}
