// Package catch implements Mukbang, a falling-item catching game.
// The player slides a face along the bottom of the screen, eating food for
// points and dodging bombs that cost a life, until the round timer or the
// lives run out.
package catch

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/core"
	"github.com/vovakirdan/mukbang/internal/registry"
)

// gameConfig is the configuration new games start with. The CLI replaces it
// after loading and validating the config file.
var gameConfig = config.DefaultCatchConfig()

// SetConfig sets the configuration used by subsequent Reset calls.
// The caller is responsible for validating it first.
func SetConfig(cfg config.CatchConfig) {
	gameConfig = cfg
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session  *Session
	settings Settings
	runtime  core.RuntimeConfig
}

// New creates a game that will use the current package configuration.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catch"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Mukbang"
}

// Reset builds a fresh session from the package configuration.
// The session starts on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.settings = NewSettings(gameConfig)
	g.session = NewSession(g.settings, runtime.Seed)
}

// Step advances the session by one tick of dt real time.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	quit := g.session.Update(in, dt)
	return core.StepResult{State: g.State(), Quit: quit}
}

// Render draws the current frame, scaling world units to the screen.
func (g *Game) Render(dst *core.Screen) {
	canvas := core.NewCanvas(dst, g.settings.ScreenWidth, g.settings.ScreenHeight)
	Render(canvas, g.session.Snapshot(), g.settings)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	state := core.GameState{
		Score:    s.Score(),
		Lives:    s.Lives(),
		Playing:  s.Phase() == PhasePlaying,
		GameOver: s.Phase() == PhaseGameOver,
	}
	if state.GameOver {
		grade := s.Grade()
		state.Result = fmt.Sprintf("%s %s (%s)", grade.Tier, grade.Title, s.EndReason())
	}
	return state
}

// Session exposes the underlying session for inspection.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register("catch", func() registry.Game {
		return New()
	})
}
