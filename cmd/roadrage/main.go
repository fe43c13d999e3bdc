// roadrage is a terminal territory-claim arcade game: steer a wasteland
// racer off the safe border, lay a trail and close it to claim ground while
// spiked hazards bounce around the open arena.
//
// Usage:
//
//	roadrage play            - Play in the terminal
//	roadrage sim             - Run the simulation headless and print a debug dump
//	roadrage config          - Print the effective configuration
//	roadrage list            - List registered games
//
// Global flags:
//
//	--fps <rate>        - Render rate (default: 60)
//	--seed <value>      - RNG seed for reproducible runs
//	--log-file <path>   - Log destination (default: ~/.arcade/roadrage.log)
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrage/internal/games/roadrage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrage",
	Short: "Road Rage: Wasteland Claim - claim the wasteland in your terminal",
	Long: `Road Rage: Wasteland Claim is a territory-claim arcade game.
Leave the safe border, draw a trail through open ground and return to
claim everything the hazards can't reach. Claim 75% to clear a level.

Available commands:
  play     - Play in the terminal
  sim      - Run headless and print the debug dump
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  roadrage play
  roadrage play --difficulty hard --hazards 3
  roadrage sim --steps 600 --axis 0,1 --seed 42
  roadrage config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/roadrage.log", "Log file path (\"-\" for stderr)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// setupLogger builds the shared logger and hands it to the game package.
// The returned func closes the log file.
func setupLogger() (*log.Logger, func()) {
	w := os.Stderr
	closeFn := func() {}

	if flagLogFile != "-" && flagLogFile != "" {
		path := expandHome(flagLogFile)
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrage",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	roadrage.SetLogger(logger)
	return logger, closeFn
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
