package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"dashboard/chartjs"
	"dashboard/charts"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, chartjs.StockDefaults(), cfg.Defaults())
	require.Equal(t, []string(charts.ServicePalette), cfg.Palette)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 900, cfg.Output.Width)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	doc := `
font:
  family: Inter
  size: 12
color: "#111"
palette: ["#aaa", "#bbb"]
output:
  width: 640
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	t.Setenv("CHARTS_FONT_SIZE", "18")
	t.Setenv("CHARTS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Inter", cfg.Font.Family)
	require.Equal(t, 18, cfg.Font.Size, "environment wins over the file")
	require.Equal(t, "#111", cfg.Color)
	require.Equal(t, []string{"#aaa", "#bbb"}, cfg.Palette)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 640, cfg.Output.Width)
	require.Equal(t, 450, cfg.Output.Height)
}

func TestLoadPaletteFromEnv(t *testing.T) {
	t.Setenv("CHARTS_PALETTE", "#111, #222,#333")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, []string{"#111", "#222", "#333"}, cfg.Palette)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("CHARTS_FONT_SIZE", "0")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	ok, err := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.False(t, ok)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHARTS_COLOR=#444\n"), 0o644))
	t.Setenv("CHARTS_COLOR", "")
	require.NoError(t, os.Unsetenv("CHARTS_COLOR"))

	ok, err = LoadEnv(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "#444", os.Getenv("CHARTS_COLOR"))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "#444", cfg.Color)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Palette = nil
	require.ErrorContains(t, cfg.Validate(), "palette")

	cfg = Default()
	cfg.Output.Height = 0
	require.ErrorContains(t, cfg.Validate(), "output size")
}
