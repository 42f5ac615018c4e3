package core

import (
	"math"
	"strings"
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color  Color
	Filled bool
	Stroke float64 // Outline width in world units, used when not filled
}

// Fill returns a solid paint.
func Fill(c Color) Paint {
	return Paint{Color: c, Filled: true}
}

// Outline returns an outline paint of the given width.
func Outline(c Color, width float64) Paint {
	return Paint{Color: c, Stroke: width}
}

// TextSize is a font size tier.
type TextSize int

const (
	TextSmall TextSize = iota
	TextMedium
	TextLarge
)

// Anchor selects which point of a text line is placed at the draw position.
type Anchor int

const (
	AnchorCenter Anchor = iota // Horizontal center
	AnchorLeft                 // Left edge
	AnchorRight                // Right edge
)

// Glyphs used for shapes on the cell grid.
const (
	fillGlyph      = '█'
	ringGlyph      = '▒'
	smallDotGlyph  = '●'
	smallRingGlyph = '○'
)

// Canvas draws world-unit primitives onto a Screen, scaling the world
// rectangle (0,0)-(worldW,worldH) to cover the whole screen.
type Canvas struct {
	dst    *Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas over dst for a world of the given size.
func NewCanvas(dst *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{dst: dst, worldW: worldW, worldH: worldH}
}

func (c *Canvas) scaleX() float64 { return float64(c.dst.Width()) / c.worldW }
func (c *Canvas) scaleY() float64 { return float64(c.dst.Height()) / c.worldH }

// CellX maps a world x coordinate to a screen column.
func (c *Canvas) CellX(x float64) int {
	return int(math.Floor(x * c.scaleX()))
}

// CellY maps a world y coordinate to a screen row.
func (c *Canvas) CellY(y float64) int {
	return int(math.Floor(y * c.scaleY()))
}

// cellCenter returns the world position of the center of a cell.
func (c *Canvas) cellCenter(cx, cy int) PointF {
	return PointF{
		X: (float64(cx) + 0.5) / c.scaleX(),
		Y: (float64(cy) + 0.5) / c.scaleY(),
	}
}

// cellSpan returns the half-open cell range covering [lo, hi) world units.
func cellSpan(lo, hi, scale float64) (int, int) {
	from := int(math.Floor(lo * scale))
	to := int(math.Ceil(hi * scale))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// DrawCircle draws a circle. Circles smaller than a cell become a single dot.
func (c *Canvas) DrawCircle(center PointF, radius float64, p Paint) {
	cellW := 1 / c.scaleX()
	cellH := 1 / c.scaleY()
	band := math.Max(p.Stroke, math.Max(cellW, cellH)/2)

	x0, x1 := cellSpan(center.X-radius, center.X+radius, c.scaleX())
	y0, y1 := cellSpan(center.Y-radius, center.Y+radius, c.scaleY())

	drawn := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			pt := c.cellCenter(cx, cy)
			d := math.Hypot(pt.X-center.X, pt.Y-center.Y)
			if d > radius {
				continue
			}
			if p.Filled {
				c.dst.SetColored(cx, cy, fillGlyph, p.Color)
			} else {
				if d < radius-band {
					continue
				}
				c.dst.SetColored(cx, cy, ringGlyph, p.Color)
			}
			drawn = true
		}
	}

	if !drawn {
		glyph := smallDotGlyph
		if !p.Filled {
			glyph = smallRingGlyph
		}
		c.dst.SetColored(c.CellX(center.X), c.CellY(center.Y), glyph, p.Color)
	}
}

// DrawRect draws a rectangle. A positive corner radius rounds outline
// corners and leaves the corner cells of filled rectangles empty.
func (c *Canvas) DrawRect(r RectF, p Paint, cornerRadius float64) {
	x0, x1 := cellSpan(r.X, r.Right(), c.scaleX())
	y0, y1 := cellSpan(r.Y, r.Bottom(), c.scaleY())
	cells := NewRect(x0, y0, x1-x0, y1-y0)

	if !p.Filled {
		c.dst.DrawBox(cells, p.Color, cornerRadius > 0)
		return
	}

	round := cornerRadius > 0 && cells.W >= 3 && cells.H >= 2
	if !round {
		c.dst.DrawRect(cells, fillGlyph, p.Color)
		return
	}
	for cy := cells.Y; cy < cells.Bottom(); cy++ {
		for cx := cells.X; cx < cells.Right(); cx++ {
			corner := (cx == cells.X || cx == cells.Right()-1) &&
				(cy == cells.Y || cy == cells.Bottom()-1)
			if corner {
				continue
			}
			c.dst.SetColored(cx, cy, fillGlyph, p.Color)
		}
	}
}

// DrawText draws a single line of text. Large text is letter-spaced.
func (c *Canvas) DrawText(text string, at PointF, size TextSize, color Color, anchor Anchor) {
	if size == TextLarge {
		text = spaced(text)
	}

	x := c.CellX(at.X)
	w := TextWidth(text)
	switch anchor {
	case AnchorCenter:
		x -= w / 2
	case AnchorRight:
		x -= w
	}
	c.dst.DrawText(x, c.CellY(at.Y), text, color)
}

func spaced(text string) string {
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
