package catch

import (
	"unicode/utf8"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/core"
)

// ItemKind is an immutable catalog entry. Kinds differ only by data.
type ItemKind struct {
	Name   string
	Symbol rune
	Color  core.Color
	Score  int     // Points for catching; negative marks a bomb
	Speed  float64 // Fall distance per tick
	Weight int     // Spawn weight, parts per 100
}

// IsBomb reports whether catching this kind costs a life instead of scoring.
func (k ItemKind) IsBomb() bool {
	return k.Score < 0
}

// Catalog is the ordered table of item kinds. Order matters for spawn selection.
type Catalog []ItemKind

// NewCatalog builds a catalog from validated configuration entries.
func NewCatalog(entries []config.ItemKindConfig) Catalog {
	catalog := make(Catalog, 0, len(entries))
	for _, e := range entries {
		color, _ := core.ParseColor(e.Color)
		symbol, _ := utf8.DecodeRuneInString(e.Symbol)
		catalog = append(catalog, ItemKind{
			Name:   e.Name,
			Symbol: symbol,
			Color:  color,
			Score:  e.Score,
			Speed:  e.Speed,
			Weight: e.Weight,
		})
	}
	return catalog
}
