// Package config holds the input and output locations of the visualizer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/data"
	"github.com/Lucash00/boilerplate-medical-data-visualizer/pkg/viz"
)

// Config holds the file locations used by a run.
type Config struct {
	Input   string `yaml:"input"`
	CatPlot string `yaml:"catplot"`
	HeatMap string `yaml:"heatmap"`
}

// Default returns the fixed relative paths the visualizer uses without a config file.
func Default() *Config {
	return &Config{
		Input:   data.DefaultPath,
		CatPlot: viz.CatPlotPath,
		HeatMap: viz.HeatMapPath,
	}
}

// Load reads configuration from a YAML file.
// A missing file yields the defaults; blank fields keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Merge(file)
	return cfg, nil
}

// Merge copies every non-empty field of o onto c.
func (c *Config) Merge(o Config) {
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.CatPlot != "" {
		c.CatPlot = o.CatPlot
	}
	if o.HeatMap != "" {
		c.HeatMap = o.HeatMap
	}
}
