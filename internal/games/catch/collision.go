package catch

// Resolution is the combined effect of all catches in one tick.
type Resolution struct {
	ScoreDelta int
	LifeDelta  int
	Consumed   []int // Indices into the item list, ascending
}

// Resolve checks every item against the player in list (spawn) order.
// Each overlapping item is consumed: bombs cost one life, anything else adds
// its score. Boxes that merely touch do not count as a catch.
func Resolve(player Player, items []FallingItem) Resolution {
	var res Resolution
	bounds := player.Bounds()

	for i, it := range items {
		if !bounds.Intersects(it.Bounds()) {
			continue
		}
		if it.Kind.IsBomb() {
			res.LifeDelta--
		} else {
			res.ScoreDelta += it.Kind.Score
		}
		res.Consumed = append(res.Consumed, i)
	}
	return res
}

// removeIndices returns items without the entries at the given ascending indices.
// The backing array is reused.
func removeIndices(items []FallingItem, indices []int) []FallingItem {
	if len(indices) == 0 {
		return items
	}
	kept := items[:0]
	next := 0
	for i, it := range items {
		if next < len(indices) && indices[next] == i {
			next++
			continue
		}
		kept = append(kept, it)
	}
	return kept
}
