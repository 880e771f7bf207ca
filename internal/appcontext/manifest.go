package appcontext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyContext   = errors.New("generated context is empty")
	ErrInvalidContext = errors.New("generated context is invalid")
)

// Manifest is the decoded schema of a generated context.
type Manifest struct {
	Identifier   string         `yaml:"identifier" validate:"required,hostname_rfc1123"`
	ProductName  string         `yaml:"productName" validate:"required"`
	Version      string         `yaml:"version" validate:"required,semver"`
	Company      string         `yaml:"company"`
	Slogan       string         `yaml:"slogan"`
	FrontendDist string         `yaml:"frontendDist" validate:"required"`
	Windows      []WindowConfig `yaml:"windows" validate:"required,min=1,unique=Label,dive"`
}

type WindowConfig struct {
	Label      string  `yaml:"label" validate:"required"`
	Title      string  `yaml:"title" validate:"required"`
	Width      float32 `yaml:"width" validate:"gt=0"`
	Height     float32 `yaml:"height" validate:"gt=0"`
	MinWidth   float32 `yaml:"minWidth" validate:"gte=0,ltefield=Width"`
	MinHeight  float32 `yaml:"minHeight" validate:"gte=0,ltefield=Height"`
	Center     bool    `yaml:"center"`
	Resizable  bool    `yaml:"resizable"`
	Fullscreen bool    `yaml:"fullscreen"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses and validates the context document. Unknown keys are
// rejected so a stale generator is caught at startup.
func (c Context) Decode() (Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(strings.NewReader(c.raw))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, fmt.Errorf("%s: %w", c.source, ErrEmptyContext)
		}
		return Manifest{}, fmt.Errorf("%s: %w: %v", c.source, ErrInvalidContext, err)
	}

	if err := validate.Struct(m); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w: %v", c.source, ErrInvalidContext, err)
	}

	return m, nil
}

// MainWindow returns the first configured window, which owns the app
// lifetime. ok is false for a manifest with no windows.
func (m Manifest) MainWindow() (w WindowConfig, ok bool) {
	if len(m.Windows) == 0 {
		return WindowConfig{}, false
	}
	return m.Windows[0], true
}
