// Package config loads chart settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/scatterplot-go/pkg/scatterplot/models"
	"gopkg.in/yaml.v3"
)

// Config is the file form of the chart settings. Keys left out of the file
// keep their default values.
type Config struct {
	Labels  models.AxisLabels   `yaml:"labels"`
	Toggles models.Toggles      `yaml:"toggles"`
	Layout  models.LayoutConfig `yaml:"layout"`
}

// Default returns the settings used when no file is given: the 940x525
// surface with anchored axes and every display toggle off.
func Default() Config {
	return Config{Layout: models.DefaultLayoutConfig()}
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the surface leaves room to draw.
func (c Config) Validate() error {
	l := c.Layout
	switch {
	case l.Cushion < 0:
		return fmt.Errorf("cushion must not be negative, got %g", l.Cushion)
	case l.DrawWidth() <= 0:
		return fmt.Errorf("width %g leaves no room inside a %g cushion", l.Width, l.Cushion)
	case l.DrawHeight() <= 0:
		return fmt.Errorf("height %g leaves no room inside a %g cushion", l.Height, l.Cushion)
	}
	return nil
}
