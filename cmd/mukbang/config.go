package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/games/catch"
)

var flagDump bool

var configCmd = &cobra.Command{
	Use:   "config [file]",
	Short: "Validate or print game configuration",
	Long: `Validates a config file and summarizes it. Without a file, the usual
search path is used (~/.mukbang/configs/catch.yaml, ./configs/catch.yaml,
then the built-in default).

Examples:
  mukbang config
  mukbang config ./my-catch.yaml
  mukbang config --dump > configs/catch.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDump {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	logger, closeLog, err := newLogger(flagLogFile, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := config.LoadCatch(path)
	if err != nil {
		logger.Error("invalid config", "source", source, "error", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("config ok", "source", source)

	fmt.Printf("Screen %gx%g, player %g (speed %g), items %g every %s\n",
		cfg.Screen.Width, cfg.Screen.Height, cfg.Player.Size, cfg.Player.Speed,
		cfg.Items.Size, cfg.Items.SpawnInterval())
	fmt.Printf("Round %ds, %d lives\n\n", cfg.Round.DurationSecs, cfg.Round.Lives)
	fmt.Println(catalogTable(catch.NewCatalog(cfg.Catalog)))
	fmt.Println(gradeTable(catch.NewGradeTable(cfg.Grades)))
}

// catalogTable renders item kinds in spawn order.
func catalogTable(c catch.Catalog) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("KIND", "SYMBOL", "EFFECT", "WEIGHT", "SPEED").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, k := range c {
		effect := "+" + strconv.Itoa(k.Score)
		if k.IsBomb() {
			effect = "-1 life"
		}
		t.Row(k.Name, string(k.Symbol), effect, strconv.Itoa(k.Weight)+"%", strconv.FormatFloat(k.Speed, 'g', -1, 64))
	}
	return t
}
