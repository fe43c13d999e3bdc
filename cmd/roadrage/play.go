package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roadrage/internal/audio"
	"github.com/vovakirdan/roadrage/internal/core"
	"github.com/vovakirdan/roadrage/internal/games/roadrage"
	"github.com/vovakirdan/roadrage/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHazards    int
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Road Rage in the terminal",
	Long: `Start the game at the hazard selection menu.

Controls:
  Arrows/WASD  - Steer (the heading holds until changed)
  X            - Stop
  Space/N      - Nitro (start/restart on menus)
  Left/Right   - Choose hazard count on menus
  Enter        - Start / restart
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+D       - Copy debug dump to clipboard
  Ctrl+S       - Save screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options (a selector is shown when --difficulty is omitted):
  easy   - 5 lives, slower hazards
  normal - Default tuning
  hard   - 2 lives, faster hazards, one extra starting hazard

Examples:
  roadrage play
  roadrage play --difficulty hard
  roadrage play --hazards 4 --sound
  roadrage play --config ./my-roadrage.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagHazards, "hazards", 0, "Preselected starting hazard count (0 = config default)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := setupLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Ask for a difficulty unless one was given
	if flagDifficulty == "" {
		preset, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			closeLog()
			os.Exit(1)
		}
		// User pressed back or quit
		if preset == nil {
			return
		}
		flagDifficulty = string(*preset)
	}

	roadrage.SetConfigPath(flagConfig)
	roadrage.SetDifficultyPreset(flagDifficulty)
	roadrage.SetStartingHazards(flagHazards)

	opts := tui.Options{Logger: logger}
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
			roadrage.SetSoundEnabled(true)
		}
	}

	if err := tui.Run(roadrage.New(), cfg, opts); err != nil {
		logger.Error("game exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
