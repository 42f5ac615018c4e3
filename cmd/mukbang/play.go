package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/core"
	"github.com/vovakirdan/mukbang/internal/games/catch"
	"github.com/vovakirdan/mukbang/internal/platform/tui"
	"github.com/vovakirdan/mukbang/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "catch".

Controls:
  Left/A, Right/D   - Move
  Space/Enter       - Start or restart
  Q/Esc/Ctrl+C      - Quit
  Ctrl+S            - Save a text screenshot

Difficulty options:
  easy   - Slower items, faster player, fewer spawns
  normal - Values from the config file
  hard   - Faster items, slower player, more spawns

Examples:
  mukbang play
  mukbang play --difficulty easy
  mukbang play --config ./my-catch.yaml
  mukbang --seed 7 --log-file mukbang.log play`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// loadGameConfig loads, validates and tunes the catch configuration.
func loadGameConfig(path, difficulty string) (config.CatchConfig, string, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.CatchConfig{}, "", err
	}

	cfg, source, err := config.LoadCatch(path)
	if err != nil {
		return config.CatchConfig{}, source, err
	}

	config.ApplyCatchPreset(&cfg, preset)
	return cfg, source, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "catch"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mukbang list' to see available games.")
		os.Exit(1)
	}

	// Invalid configuration is fatal before the terminal is taken over.
	gameCfg, source, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	catch.SetConfig(gameCfg)

	logger, closeLog, err := newLogger(flagLogFile, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)

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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game stopped", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
