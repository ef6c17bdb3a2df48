// polyscatter scatters randomly placed, sized, rotated and colored
// polygons and circles over a canvas.
//
// Usage:
//
//	polyscatter render -o art.png   - Render one scene to a file
//	polyscatter view                - Show scenes in the terminal
//	polyscatter serve               - Start SSH server for remote viewing
//	polyscatter list                - List templates, formats and presets
//	polyscatter inspect             - Print the shapes of one generation
//	polyscatter config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom render config YAML
//	--seed <value>      - Set RNG seed for a reproducible scene
//	--preset <name>     - Apply a named look (classic, mono)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyscatter/internal/config"

	// Import surfaces to register their output formats
	_ "github.com/vovakirdan/polyscatter/internal/surface/raster"
	_ "github.com/vovakirdan/polyscatter/internal/surface/vector"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagPreset   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "polyscatter",
	Short: "Polyscatter - generative shape scatter art",
	Long: `Polyscatter fills a canvas with a background color and scatters
randomly placed, sized, rotated and colored polygons and circles over it.
Some shapes are outlined, the rest are filled on top.

Available commands:
  render   - Render one scene to a PNG or SVG file
  view     - Show scenes in the terminal
  serve    - Start SSH server for remote viewing
  list     - Show templates, output formats and presets
  inspect  - Print the sampled shapes of one generation
  config   - Print the effective configuration

Examples:
  polyscatter render -o art.png
  polyscatter render --format svg --seed 42 > art.svg
  polyscatter view --preset classic
  polyscatter serve --ssh :2222`,
	PersistentPreRunE: setupLogging,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom render config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Look preset: classic, mono")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging creates the shared logger and routes the rasterizer's
// diagnostics through it.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "polyscatter",
		Level:           level,
	})
	gg.SetLogger(slog.New(logger.With("lib", "gg")))
	return nil
}

// loadConfig loads the render config, applies the preset and validates it.
func loadConfig() (config.RenderConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RenderConfig{}, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return config.RenderConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.RenderConfig{}, err
	}
	return cfg, nil
}

// seed returns the --seed value, or a time based one when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newRNG creates the sampler's random source and logs its seed so a
// scene can be reproduced.
func newRNG() *rand.Rand {
	s := seed()
	logger.Debug("seeded sampler", "seed", s)
	return rand.New(rand.NewSource(s))
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
