package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the render configuration after the config search and the
preset have been applied. The output is a valid config file.

Examples:
  polyscatter config > ~/.polyscatter/configs/render.yaml
  polyscatter config --preset classic`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("%v", err)
	}
	if err := enc.Close(); err != nil {
		fail("%v", err)
	}
}
