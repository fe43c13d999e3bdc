package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrage/internal/config"
	"github.com/vovakirdan/roadrage/internal/games/roadrage"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Resolve the configuration the game would use and print it.

Search order: --config, ~/.arcade/configs/roadrage.yaml,
./configs/roadrage.yaml, then the built-in defaults. The difficulty preset
is applied on top. Use --default to print the annotated built-in file,
a good starting point for a custom config.

Examples:
  roadrage config
  roadrage config --difficulty hard
  roadrage config --default > ~/.arcade/configs/roadrage.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigDefault {
		fmt.Print(string(config.GetDefaultYAML(roadrage.ID)))
		return
	}

	roadrage.SetConfigPath(flagConfig)
	roadrage.SetDifficultyPreset(flagDifficulty)

	cfg, err := roadrage.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
