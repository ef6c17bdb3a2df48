package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/registry"
	"github.com/vovakirdan/polyscatter/internal/scene"
)

var (
	flagOutput string
	flagFormat string
	flagWidth  int
	flagHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one scene to a file",
	Long: `Generate one scene and write it as PNG or SVG.

The format is taken from --format, or from the output file extension,
and defaults to png. Use -o - to write to stdout.

Examples:
  polyscatter render                       # Writes polyscatter.png
  polyscatter render -o art.svg            # SVG, inferred from extension
  polyscatter render --format svg -o -     # SVG to stdout
  polyscatter render --width 800 --height 600 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (- for stdout)")
	renderCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: png, svg")
	renderCmd.Flags().IntVar(&flagWidth, "width", 0, "Canvas width override in pixels")
	renderCmd.Flags().IntVar(&flagHeight, "height", 0, "Canvas height override in pixels")
}

func runRender(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagWidth > 0 {
		cfg.Canvas.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Canvas.Height = flagHeight
	}

	format, output := resolveOutput(flagFormat, flagOutput)
	if !registry.Exists(format) {
		fail("unknown format %q\nRun 'polyscatter list' to see available formats.", format)
	}

	sc, err := renderScene(cfg, format, output)
	if err != nil {
		fail("%v", err)
	}

	w, h := sc.Size()
	logger.Info("scene rendered",
		"output", output,
		"format", format,
		"size", fmt.Sprintf("%dx%d", w, h),
		"stroked", len(sc.Stroked()),
		"filled", len(sc.Filled()),
	)
}

// renderScene samples and paints one scene, then writes it to output.
// The output surface is released before returning.
func renderScene(cfg config.RenderConfig, format, output string) (*scene.Scene, error) {
	sc, err := scene.New(cfg, geometry.DefaultCatalogue(), newRNG())
	if err != nil {
		return nil, err
	}

	w, h := sc.Size()
	out, err := registry.Create(format, w, h)
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if err := sc.Load(out); err != nil {
		return nil, err
	}
	if err := writeOutput(output, out); err != nil {
		return nil, err
	}
	return sc, nil
}

// resolveOutput picks the format and destination from the flags.
func resolveOutput(format, output string) (string, string) {
	if format == "" {
		format = "png"
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" && registry.Exists(ext) {
			format = ext
		}
	}
	if output == "" {
		ext := "." + format
		if info, ok := registry.Lookup(format); ok {
			ext = info.Extension
		}
		output = "polyscatter" + ext
	}
	return format, output
}

// writeOutput encodes the painted surface to a file or stdout.
func writeOutput(path string, out registry.Output) error {
	if path == "-" {
		return out.Encode(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	if err := out.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
