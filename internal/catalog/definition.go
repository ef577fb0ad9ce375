// Package catalog loads spinner designs from Markdown files whose
// frontmatter carries the templates and scaling rules and whose body
// describes the design.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-loading/internal/spinner"
)

// Kinds of catalog definitions.
const (
	KindScaled = "scaled"
	KindCustom = "custom"
)

// ErrDefinitionInvalid is returned for definitions missing required fields.
var ErrDefinitionInvalid = errors.New("catalog: invalid spinner definition")

const textCodeDefinitionInvalid = "CATALOG_DEFINITION_INVALID"

// Definition is one parsed catalog file.
type Definition struct {
	Name            string
	Kind            string
	Summary         string
	Defaults        spinner.Defaults
	Rules           spinner.Rules
	CSS             string
	HTML            string
	Description     []byte
	DescriptionHTML string
	Path            string
}

type definitionEnvelope struct {
	Name     string           `yaml:"name"`
	Kind     string           `yaml:"kind"`
	Summary  string           `yaml:"summary"`
	Defaults defaultsEnvelope `yaml:"defaults"`
	Rules    spinner.Rules    `yaml:"rules"`
	CSS      string           `yaml:"css"`
	HTML     string           `yaml:"html"`
}

type defaultsEnvelope struct {
	Size            float64 `yaml:"size"`
	Color           string  `yaml:"color"`
	BackgroundColor string  `yaml:"background_color"`
}

// Parse reads a definition from source. md renders the body; nil uses a
// plain goldmark engine.
func Parse(path string, source []byte, md goldmark.Markdown) (*Definition, error) {
	var env definitionEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(source), &env)
	if err != nil {
		return nil, fmt.Errorf("parse catalog frontmatter %s: %w", path, err)
	}

	name := spinner.CanonicalName(env.Name)
	if name == "" {
		return nil, invalidDefinition(path, "name is required")
	}
	if strings.TrimSpace(env.CSS) == "" {
		return nil, invalidDefinition(path, "css template is required")
	}

	kind := strings.ToLower(strings.TrimSpace(env.Kind))
	switch kind {
	case "":
		kind = KindScaled
	case KindScaled, KindCustom:
	default:
		return nil, invalidDefinition(path, fmt.Sprintf("unknown kind %q", env.Kind))
	}
	if env.Defaults.Size < 0 {
		return nil, invalidDefinition(path, "default size must be positive")
	}

	if md == nil {
		md = goldmark.New()
	}
	description := bytes.TrimSpace(body)
	var rendered bytes.Buffer
	if len(description) > 0 {
		if err := md.Convert(description, &rendered); err != nil {
			return nil, fmt.Errorf("render catalog description %s: %w", path, err)
		}
	}

	return &Definition{
		Name:    name,
		Kind:    kind,
		Summary: strings.TrimSpace(env.Summary),
		Defaults: spinner.Defaults{
			Size:            env.Defaults.Size,
			Color:           strings.TrimSpace(env.Defaults.Color),
			BackgroundColor: strings.TrimSpace(env.Defaults.BackgroundColor),
		},
		Rules:           env.Rules.WithDefaults(),
		CSS:             env.CSS,
		HTML:            env.HTML,
		Description:     description,
		DescriptionHTML: rendered.String(),
		Path:            path,
	}, nil
}

// Variant builds a fresh variant from the definition.
func (d Definition) Variant() spinner.Variant {
	if d.Kind == KindCustom {
		v := spinner.NewCustom(d.Name, d.CSS, d.HTML)
		v.Default = d.Defaults
		return v
	}
	v := spinner.NewScaled(d.Name, d.CSS, d.HTML, d.Rules)
	v.Default = d.Defaults
	return v
}

func invalidDefinition(path, message string) error {
	return goerrors.Wrap(ErrDefinitionInvalid, goerrors.CategoryValidation, path+": "+message).
		WithTextCode(textCodeDefinitionInvalid)
}
