// mukbang is a terminal catching game: slide along the bottom of the screen,
// eat the falling food and dodge the bombs before the clock runs out.
//
// Usage:
//
//	mukbang play             - Play the game
//	mukbang list             - List available games
//	mukbang grades           - Show the grade table
//	mukbang config [file]    - Validate a config file or print the default one
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mukbang/internal/games/catch"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mukbang",
	Short: "Mukbang - catch falling food in your terminal",
	Long: `Mukbang is a terminal arcade game. Move left and right to eat the
falling food and avoid the bombs. A round lasts 60 seconds or until
you run out of lives, then you get a grade for your score.

Available commands:
  play     - Play the game
  list     - Show all available games
  grades   - Show the grade table
  config   - Validate or print game configuration

Examples:
  mukbang play
  mukbang play --difficulty hard
  mukbang --seed 42 play
  mukbang grades --score 320
  mukbang config ./my-catch.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(configCmd)
}
