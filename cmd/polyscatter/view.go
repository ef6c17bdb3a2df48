package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/polyscatter/internal/core"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/platform/tui"
)

var (
	flagBackdrop      string
	flagTrackViewport bool
	flagSnapshotDir   string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show scenes in the terminal",
	Long: `Render scenes as half-block pixels in the terminal.

Resizing the terminal samples a new scene. With --track-viewport the
canvas follows the terminal size, otherwise the configured canvas is
scaled to fit.

Controls:
  R/Space    - New scene
  S          - Save a full-size PNG snapshot
  Tab        - Show the shape table
  ?          - More help
  Q/Ctrl+C   - Quit

Examples:
  polyscatter view
  polyscatter view --preset classic --track-viewport
  polyscatter view --backdrop "#1e1e2e"`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagBackdrop, "backdrop", "#ffffff", "Color shown through transparent pixels")
	viewCmd.Flags().BoolVar(&flagTrackViewport, "track-viewport", false, "Size the canvas to the terminal")
	viewCmd.Flags().StringVar(&flagSnapshotDir, "snapshots", "", "Snapshot directory (default ~/.polyscatter/snapshots)")
}

func runView(cmd *cobra.Command, _ []string) {
	viewer, err := viewerConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	viewer.Width, viewer.Height = 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		viewer.Width = w
		viewer.Height = h
	}
	viewer.Seed = seed()

	if err := tui.Run(viewer); err != nil {
		fail("%v", err)
	}
}

// viewerConfig builds the viewer settings shared by view and serve.
func viewerConfig(cmd *cobra.Command) (tui.ViewerConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.ViewerConfig{}, err
	}
	if cmd.Flags().Changed("track-viewport") {
		cfg.Canvas.TrackViewport = flagTrackViewport
	}

	backdrop, err := core.ParseColor(flagBackdrop)
	if err != nil {
		return tui.ViewerConfig{}, err
	}

	return tui.ViewerConfig{
		Render:      cfg,
		Catalogue:   geometry.DefaultCatalogue(),
		Backdrop:    backdrop,
		SnapshotDir: flagSnapshotDir,
		Logger:      logger,
	}, nil
}
