package core

import "testing"

// newTestCanvas maps a 100x100 world onto a 10x10 screen: one cell per 10 units.
func newTestCanvas() (*Screen, *Canvas) {
	s := NewScreen(10, 10)
	return s, NewCanvas(s, 100, 100)
}

func TestCanvasCellMapping(t *testing.T) {
	_, c := newTestCanvas()

	if c.CellX(0) != 0 || c.CellX(9.99) != 0 || c.CellX(10) != 1 {
		t.Error("CellX should floor world units to columns")
	}
	if c.CellY(55) != 5 {
		t.Errorf("CellY(55) = %d, expected 5", c.CellY(55))
	}
	if c.CellY(-5) != -1 {
		t.Errorf("CellY(-5) = %d, expected -1 (above the screen)", c.CellY(-5))
	}
}

func TestCanvasDrawCircleFilled(t *testing.T) {
	s, c := newTestCanvas()
	c.DrawCircle(PointF{X: 50, Y: 50}, 20, Fill(ColorOrange))

	cell := s.GetCell(4, 4)
	if cell.Rune != fillGlyph || cell.Color != ColorOrange {
		t.Errorf("center cell = %+v, expected orange fill", cell)
	}
	if s.Get(5, 5) != fillGlyph {
		t.Error("cell (5,5) is inside the circle and should be filled")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("corner cell (3,3) lies outside the radius and should stay blank")
	}
}

func TestCanvasDrawCircleTiny(t *testing.T) {
	s, c := newTestCanvas()
	c.DrawCircle(PointF{X: 51, Y: 51}, 2, Fill(ColorWhite))
	c.DrawCircle(PointF{X: 21, Y: 21}, 2, Outline(ColorWhite, 1))

	if s.Get(5, 5) != smallDotGlyph {
		t.Errorf("tiny filled circle should be a dot, got %q", s.Get(5, 5))
	}
	if s.Get(2, 2) != smallRingGlyph {
		t.Errorf("tiny outlined circle should be a ring, got %q", s.Get(2, 2))
	}
}

func TestCanvasDrawRect(t *testing.T) {
	s, c := newTestCanvas()
	c.DrawRect(RectF{X: 10, Y: 10, W: 30, H: 20}, Fill(ColorBlue), 0)

	if s.Get(1, 1) != fillGlyph || s.Get(3, 2) != fillGlyph {
		t.Error("filled rect should cover cells 1..3 x 1..2")
	}
	if s.Get(4, 1) != ' ' || s.Get(1, 3) != ' ' {
		t.Error("filled rect should not spill past its edges")
	}

	s.Clear()
	c.DrawRect(RectF{X: 10, Y: 10, W: 30, H: 20}, Fill(ColorBlue), 5)
	if s.Get(1, 1) != ' ' {
		t.Error("rounded fill should leave corner cells empty")
	}
	if s.Get(2, 1) != fillGlyph {
		t.Error("rounded fill should still fill edge cells")
	}

	s.Clear()
	c.DrawRect(RectF{X: 10, Y: 10, W: 30, H: 20}, Outline(ColorBlue, 2), 0)
	if s.Get(1, 1) != '┌' || s.Get(3, 2) != '┘' {
		t.Error("outline rect should draw a box")
	}
}

func TestCanvasDrawText(t *testing.T) {
	tests := []struct {
		name   string
		size   TextSize
		anchor Anchor
		startX int
		want   string
	}{
		{"centered", TextMedium, AnchorCenter, 4, "AB"},
		{"left", TextSmall, AnchorLeft, 5, "AB"},
		{"right", TextSmall, AnchorRight, 3, "AB"},
		{"large is spaced", TextLarge, AnchorCenter, 4, "A B"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, c := newTestCanvas()
			c.DrawText("AB", PointF{X: 50, Y: 0}, tc.size, ColorWhite, tc.anchor)

			for i, ch := range tc.want {
				if got := s.Get(tc.startX+i, 0); got != ch {
					t.Errorf("cell %d = %q, expected %q (row %q)", tc.startX+i, got, ch, s.Row(0))
				}
			}
		})
	}
}
