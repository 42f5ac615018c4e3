package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mukbang/internal/games/catch"
)

var flagScore int

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "Show the grade table",
	Long: `Prints the score tiers awarded at the end of a round.
With --score, prints the grade that score would receive.

Examples:
  mukbang grades
  mukbang grades --score 320
  mukbang grades --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runGrades,
}

func init() {
	gradesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	gradesCmd.Flags().IntVar(&flagScore, "score", 0, "Evaluate a single score")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runGrades(cmd *cobra.Command, args []string) {
	cfg, _, err := loadGameConfig(flagConfig, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	grades := catch.NewGradeTable(cfg.Grades)

	if cmd.Flags().Changed("score") {
		g := grades.Evaluate(flagScore)
		fmt.Printf("Score %d: %s %s\n", flagScore, g.Tier, g.Title)
		if g.Message != "" {
			fmt.Printf("  %q\n", g.Message)
		}
		return
	}

	fmt.Println(gradeTable(grades))
}

// gradeTable renders the grades highest first.
func gradeTable(grades catch.GradeTable) *table.Table {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("MIN SCORE", "TIER", "TITLE", "MESSAGE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, g := range grades {
		t.Row(strconv.Itoa(g.MinScore), g.Tier, g.Title, g.Message)
	}
	return t
}
