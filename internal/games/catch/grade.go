package catch

import "github.com/vovakirdan/mukbang/internal/config"

// Grade is a score tier awarded at the end of a round.
type Grade struct {
	MinScore int
	Tier     string
	Title    string
	Message  string
}

// GradeTable is ordered by MinScore, highest first, and ends with a zero floor.
type GradeTable []Grade

// NewGradeTable builds a table from validated configuration entries.
func NewGradeTable(entries []config.GradeConfig) GradeTable {
	table := make(GradeTable, len(entries))
	for i, e := range entries {
		table[i] = Grade{
			MinScore: e.MinScore,
			Tier:     e.Tier,
			Title:    e.Title,
			Message:  e.Message,
		}
	}
	return table
}

// Evaluate returns the first grade whose MinScore is at most score.
// Scores below every threshold get the last (lowest) grade.
func (t GradeTable) Evaluate(score int) Grade {
	for _, g := range t {
		if score >= g.MinScore {
			return g
		}
	}
	return t[len(t)-1]
}
