// Package config loads the dashboard chart settings from a .env file, the
// environment (CHARTS_ prefix) and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"dashboard/chartjs"
	"dashboard/charts"
	"dashboard/render"
)

const EnvPrefix = "CHARTS"

type Config struct {
	Font       chartjs.Font `mapstructure:"font" yaml:"font"`
	Color      string       `mapstructure:"color" yaml:"color"`
	Palette    []string     `mapstructure:"palette" yaml:"palette"`
	ChartJSSrc string       `mapstructure:"chartjs_src" yaml:"chartjs_src"`
	Log        Log          `mapstructure:"log" yaml:"log"`
	Output     Output       `mapstructure:"output" yaml:"output"`
}

type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

type Output struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

func Default() Config {
	d := chartjs.StockDefaults()
	return Config{
		Font:       d.Font,
		Color:      d.Color,
		Palette:    append([]string(nil), charts.ServicePalette...),
		ChartJSSrc: render.ChartJSSrc,
		Log:        Log{Level: "info", Pretty: true},
		Output:     Output{Width: render.DefaultWidth, Height: render.DefaultHeight},
	}
}

// LoadEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error: settings may come from the real
// environment instead. It reports whether the file was read.
func LoadEnv(path string) (bool, error) {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("config: load %s: %w", path, err)
	}
	return true, nil
}

// Load builds the configuration: defaults, then the YAML file at path (if
// any), then CHARTS_* environment variables, e.g. CHARTS_FONT_SIZE=16.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	// CHARTS_PALETTE arrives as one comma separated string.
	cfg.Palette = splitList(strings.Join(cfg.Palette, ","))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("font.family", d.Font.Family)
	v.SetDefault("font.size", d.Font.Size)
	v.SetDefault("color", d.Color)
	v.SetDefault("palette", d.Palette)
	v.SetDefault("chartjs_src", d.ChartJSSrc)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("output.width", d.Output.Width)
	v.SetDefault("output.height", d.Output.Height)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Validate() error {
	if err := c.Defaults().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Palette) == 0 {
		return errors.New("config: palette is empty")
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("config: output size must be positive, got %dx%d", c.Output.Width, c.Output.Height)
	}
	return nil
}

// Defaults converts the styling part of the config.
func (c *Config) Defaults() chartjs.Defaults {
	return chartjs.Defaults{Font: c.Font, Color: c.Color}
}
