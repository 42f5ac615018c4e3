package catch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mukbang/internal/core"
)

// Renderer is the drawing surface the game paints onto, in world units.
// core.Canvas implements it for the terminal; tests use a recorder.
type Renderer interface {
	DrawCircle(center core.PointF, radius float64, p core.Paint)
	DrawRect(r core.RectF, p core.Paint, cornerRadius float64)
	DrawText(text string, at core.PointF, size core.TextSize, color core.Color, anchor core.Anchor)
}

const (
	hudY          = 25.0
	hudMargin     = 15.0
	buttonWidth   = 180.0
	buttonHeight  = 50.0
	platformWidth = 60.0
)

// Render draws one frame for the snapshot. It only reads state.
func Render(r Renderer, snap Snapshot, st Settings) {
	switch snap.Phase {
	case PhaseStart:
		drawStart(r, st)
	case PhasePlaying:
		drawPlaying(r, snap, st)
	case PhaseGameOver:
		drawPlaying(r, snap, st)
		drawGameOver(r, snap, st)
	}
}

func drawStart(r Renderer, st Settings) {
	w, h := st.ScreenWidth, st.ScreenHeight
	cx := w / 2

	r.DrawText("MUKBANG", core.PointF{X: cx, Y: h / 3}, core.TextLarge, core.ColorBrightYellow, core.AnchorCenter)
	r.DrawText("Eat the food, dodge the bombs!", core.PointF{X: cx, Y: h/3 + 50}, core.TextSmall, core.ColorWhite, core.AnchorCenter)

	drawButton(r, "SPACE to start", core.PointF{X: cx, Y: h/2 + buttonHeight/2})

	r.DrawText("Move: ←/→ or A/D   Quit: Q", core.PointF{X: cx, Y: h - 100}, core.TextSmall, core.ColorGray, core.AnchorCenter)
	r.DrawText(Legend(st.Catalog), core.PointF{X: cx, Y: h - 60}, core.TextSmall, core.ColorGray, core.AnchorCenter)
}

func drawPlaying(r Renderer, snap Snapshot, st Settings) {
	w, h := st.ScreenWidth, st.ScreenHeight

	r.DrawRect(core.RectF{X: 0, Y: h - st.Ground, W: w, H: st.Ground}, core.Fill(core.ColorNavy), 0)

	for _, it := range snap.Items {
		drawItem(r, it)
	}
	drawPlayer(r, snap.Player)
	drawHUD(r, snap, st)
}

func drawItem(r Renderer, it FallingItem) {
	center := core.PointF{X: it.X, Y: it.Y}
	r.DrawCircle(center, it.Size/2, core.Fill(it.Kind.Color))
	r.DrawCircle(center, it.Size/2, core.Outline(core.ColorWhite, 2))
	r.DrawText(string(it.Kind.Symbol), center, core.TextMedium, core.ColorBrightWhite, core.AnchorCenter)
}

func drawPlayer(r Renderer, p Player) {
	center := core.PointF{X: p.X, Y: p.Y}
	r.DrawCircle(center, p.Size/2, core.Fill(core.ColorPeach))

	eye := p.Size / 5
	r.DrawCircle(core.PointF{X: p.X - eye, Y: p.Y - eye/2}, 5, core.Fill(core.ColorDefault))
	r.DrawCircle(core.PointF{X: p.X + eye, Y: p.Y - eye/2}, 5, core.Fill(core.ColorDefault))
	r.DrawText("◡", core.PointF{X: p.X, Y: p.Y + eye}, core.TextMedium, core.ColorRed, core.AnchorCenter)

	platform := core.RectF{X: p.X - platformWidth/2, Y: p.Y + p.Size/2, W: platformWidth, H: 10}
	r.DrawRect(platform, core.Fill(core.ColorBlue), 5)
}

func drawHUD(r Renderer, snap Snapshot, st Settings) {
	w := st.ScreenWidth

	r.DrawText(fmt.Sprintf("Time: %ds", snap.TimeRemaining), core.PointF{X: hudMargin, Y: hudY}, core.TextSmall, core.ColorCyan, core.AnchorLeft)
	r.DrawText(fmt.Sprintf("Score: %d", snap.Score), core.PointF{X: w / 2, Y: hudY}, core.TextMedium, core.ColorBrightYellow, core.AnchorCenter)
	r.DrawText("Life: "+Hearts(snap.Lives, snap.MaxLives), core.PointF{X: w - hudMargin, Y: hudY}, core.TextSmall, core.ColorBrightRed, core.AnchorRight)
}

func drawGameOver(r Renderer, snap Snapshot, st Settings) {
	w, h := st.ScreenWidth, st.ScreenHeight
	cx := w / 2

	panel := core.RectF{X: 20, Y: h/4 - 40, W: w - 40, H: h/2 + 40}
	r.DrawRect(panel, core.Outline(core.ColorGray, 2), 12)

	r.DrawText("GAME OVER", core.PointF{X: cx, Y: h / 4}, core.TextLarge, core.ColorBrightRed, core.AnchorCenter)
	r.DrawText(snap.EndReason.String(), core.PointF{X: cx, Y: h/4 + 40}, core.TextSmall, core.ColorGray, core.AnchorCenter)

	g := snap.Grade
	r.DrawText(fmt.Sprintf("%s · %s", g.Tier, g.Title), core.PointF{X: cx, Y: h/2 - 20}, core.TextMedium, core.ColorBrightYellow, core.AnchorCenter)
	r.DrawText(fmt.Sprintf("Final score: %d", snap.Score), core.PointF{X: cx, Y: h/2 + 20}, core.TextMedium, core.ColorBrightWhite, core.AnchorCenter)
	if g.Message != "" {
		r.DrawText(`"`+g.Message+`"`, core.PointF{X: cx, Y: h/2 + 60}, core.TextSmall, core.ColorGray, core.AnchorCenter)
	}

	drawButton(r, "SPACE to restart", core.PointF{X: cx, Y: h - 140 + buttonHeight/2})
}

func drawButton(r Renderer, label string, center core.PointF) {
	rect := core.RectF{X: center.X - buttonWidth/2, Y: center.Y - buttonHeight/2, W: buttonWidth, H: buttonHeight}
	r.DrawRect(rect, core.Outline(core.ColorBrightBlue, 2), buttonHeight/2)
	r.DrawText(label, center, core.TextMedium, core.ColorBrightWhite, core.AnchorCenter)
}

// Hearts renders lives as filled hearts followed by empty ones up to total.
func Hearts(lives, total int) string {
	lives = max(lives, 0)
	total = max(total, lives)
	return strings.Repeat("♥", lives) + strings.Repeat("♡", total-lives)
}

// Legend lists every kind as "symbol:+score", bombs as "symbol:life-1".
func Legend(c Catalog) string {
	parts := make([]string, 0, len(c))
	for _, k := range c {
		if k.IsBomb() {
			parts = append(parts, fmt.Sprintf("%c:life-1", k.Symbol))
			continue
		}
		parts = append(parts, fmt.Sprintf("%c:+%d", k.Symbol, k.Score))
	}
	return strings.Join(parts, "  ")
}
