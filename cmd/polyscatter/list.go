package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates, output formats and presets",
	Long:  `Shows the polygon templates shapes are drawn from, the registered output formats and the look presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cat := geometry.DefaultCatalogue()

	fmt.Println("Templates:")
	fmt.Println()
	fmt.Printf("  %-5s  %-10s  %s\n", "Index", "Name", "Vertices")
	fmt.Printf("  %-5s  %-10s  %s\n", "-----", "----", "--------")
	for i, t := range cat.Templates() {
		fmt.Printf("  %-5d  %-10s  %d\n", i, t.Name(), t.Len())
	}
	fmt.Printf("  %-5s  %-10s  %s\n", "-", geometry.Circle(), "parametric")

	formats := registry.List()
	maxIDLen := 2 // "ID" header
	for _, f := range formats {
		maxIDLen = max(maxIDLen, len(f.ID))
	}

	fmt.Println()
	fmt.Println("Output formats:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range formats {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %-8s  %s\n", p, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'polyscatter render --format <id>' to render a scene.")
}
