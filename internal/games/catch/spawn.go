package catch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/mukbang/internal/config"
)

// Spawner picks item kinds by weight and places new items above the screen.
// It owns the session's random source; the same seed replays the same spawns.
type Spawner struct {
	catalog  Catalog
	itemSize float64
	rng      *rand.Rand
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(catalog Catalog, itemSize float64, seed int64) *Spawner {
	return &Spawner{
		catalog:  catalog,
		itemSize: itemSize,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Select draws a uniform integer in [1, 100] and returns the first kind whose
// cumulative weight, in catalog order, reaches the draw.
func (s *Spawner) Select() ItemKind {
	draw := s.rng.Intn(config.TotalSpawnWeight) + 1
	return s.kindFor(draw)
}

// kindFor walks the catalog for a given draw. If the weights fall short of
// the draw the first kind is returned so the game stays playable.
func (s *Spawner) kindFor(draw int) ItemKind {
	cumulative := 0
	for _, k := range s.catalog {
		cumulative += k.Weight
		if draw <= cumulative {
			return k
		}
	}
	return s.catalog[0]
}

// Spawn creates a new item of a selected kind at a random whole-unit column
// in [itemSize, screenWidth-itemSize], just above the top edge.
func (s *Spawner) Spawn(screenWidth float64) FallingItem {
	kind := s.Select()

	lo := int(math.Ceil(s.itemSize))
	hi := int(math.Floor(screenWidth - s.itemSize))
	x := lo
	if hi > lo {
		x = lo + s.rng.Intn(hi-lo+1)
	}

	return FallingItem{
		X:    float64(x),
		Y:    -s.itemSize,
		Size: s.itemSize,
		Kind: kind,
	}
}
