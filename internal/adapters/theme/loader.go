// Package theme loads overlay skins from YAML. Built-in themes ship
// embedded; a directory of user themes can shadow them by name.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/termdeck/termdeck/internal/domain"
	"github.com/termdeck/termdeck/internal/ports"
)

//go:embed themes/*.yaml
var builtin embed.FS

type Loader struct {
	dir string
}

var _ ports.ThemeLoader = (*Loader)(nil)

// NewLoader creates a loader; dir is an optional directory of user themes
// that take precedence over the embedded ones.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

type themeSchema struct {
	Name             string `yaml:"name"`
	EmptyText        string `yaml:"empty_text"`
	DiagnosticPrefix string `yaml:"diagnostic_prefix"`
	Cursor           string `yaml:"cursor"`
	Palette          struct {
		Foreground string `yaml:"foreground"`
		Background string `yaml:"background"`
		Accent     string `yaml:"accent"`
		Dim        string `yaml:"dim"`
		Alert      string `yaml:"alert"`
	} `yaml:"palette"`
}

func (l *Loader) Load(name string) (ports.Theme, error) {
	if strings.TrimSpace(name) == "" {
		return ports.Theme{}, fmt.Errorf("%w: empty theme name", domain.ErrThemeNotFound)
	}

	data, err := l.read(name)
	if err != nil {
		return ports.Theme{}, err
	}

	var schema themeSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return ports.Theme{}, fmt.Errorf("decode theme %q: %w", name, err)
	}
	if schema.Name == "" {
		schema.Name = name
	}

	return ports.Theme{
		Name:             schema.Name,
		EmptyText:        schema.EmptyText,
		DiagnosticPrefix: schema.DiagnosticPrefix,
		Cursor:           schema.Cursor,
		Palette: ports.Palette{
			Foreground: schema.Palette.Foreground,
			Background: schema.Palette.Background,
			Accent:     schema.Palette.Accent,
			Dim:        schema.Palette.Dim,
			Alert:      schema.Palette.Alert,
		},
	}, nil
}

func (l *Loader) read(name string) ([]byte, error) {
	fileName := name + ".yaml"

	if l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, fileName))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read theme %q: %w", name, err)
		}
	}

	data, err := builtin.ReadFile("themes/" + fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrThemeNotFound, name)
	}
	return data, nil
}
