package catch

import "github.com/vovakirdan/mukbang/internal/core"

// Player is the paddle. It only moves horizontally.
type Player struct {
	X           float64 // Center
	Y           float64 // Center, constant for a round
	Size        float64
	Speed       float64 // Units per move
	ScreenWidth float64
}

// Move shifts the player by direction*speed and clamps it so the paddle
// stays fully on screen. Direction is -1, 0 or +1.
func (p *Player) Move(direction int) {
	p.X += float64(direction) * p.Speed
	p.X = core.ClampF(p.X, p.Size/2, p.ScreenWidth-p.Size/2)
}

// Bounds returns the collision box: a square of side Size centered on the player.
func (p Player) Bounds() core.RectF {
	return core.CenteredSquare(p.X, p.Y, p.Size)
}

// FallingItem is a single item on its way down.
type FallingItem struct {
	X    float64 // Center, fixed at spawn
	Y    float64 // Center
	Size float64
	Kind ItemKind
}

// Advance moves the item down by its kind's fall speed. Called once per tick.
func (it *FallingItem) Advance() {
	it.Y += it.Kind.Speed
}

// OffScreen reports whether the item has fully left past the bottom edge.
func (it FallingItem) OffScreen(screenHeight float64) bool {
	return it.Y > screenHeight+it.Size
}

// Bounds returns the collision box centered on the item.
func (it FallingItem) Bounds() core.RectF {
	return core.CenteredSquare(it.X, it.Y, it.Size)
}
