package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cubesnake/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game config",
	Long: `Print the default game config, or with --effective the config that
games will actually use after the file search and CUBESNAKE_* overrides.

Config files are searched in this order:
  1. --config <path>
  2. ~/.cubesnake/configs/cubesnake.yaml
  3. ./configs/cubesnake.yaml
  4. built-in defaults

Examples:
  cubesnake config > ~/.cubesnake/configs/cubesnake.yaml
  cubesnake config --effective
  cubesnake config --effective --config ./my-cubesnake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadCubeSnake(flagConfigPath)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
