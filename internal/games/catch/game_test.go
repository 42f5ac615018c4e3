package catch

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/core"
	"github.com/vovakirdan/mukbang/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: 42})
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("catch") {
		t.Fatal("catch game not registered")
	}
	g, err := registry.Create("catch")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.ID() != "catch" || g.Title() != "Mukbang" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestGameStateFollowsPhase(t *testing.T) {
	g := newTestGame(t)

	if st := g.State(); st.Playing || st.GameOver || st.Lives != 3 {
		t.Errorf("unexpected title state: %+v", st)
	}

	res := g.Step(pressed(core.ActionConfirm), 0)
	if !res.State.Playing || res.Quit {
		t.Errorf("expected playing after confirm: %+v", res)
	}

	g.Session().score = 510
	g.Session().end(EndTimeUp)
	st := g.State()
	if !st.GameOver || st.Playing {
		t.Fatalf("expected game over state: %+v", st)
	}
	if st.Result != "LEGEND Legendary Glutton (time up)" {
		t.Errorf("unexpected result %q", st.Result)
	}
}

func TestGameStepQuit(t *testing.T) {
	g := newTestGame(t)

	if res := g.Step(pressed(core.ActionQuit), time.Millisecond); !res.Quit {
		t.Error("expected quit result")
	}
}

func TestGameUsesConfiguredSettings(t *testing.T) {
	defer SetConfig(config.DefaultCatchConfig())

	cfg := config.DefaultCatchConfig()
	cfg.Round.Lives = 5
	cfg.Round.DurationSecs = 30
	SetConfig(cfg)

	g := newTestGame(t)
	if g.Session().Lives() != 5 || g.Session().TimeRemaining() != 30 {
		t.Errorf("config not applied: lives=%d time=%d", g.Session().Lives(), g.Session().TimeRemaining())
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(40, 30)

	g.Render(screen)

	if !strings.Contains(screen.String(), "SPACE to start") {
		t.Errorf("expected start button on screen:\n%s", screen.String())
	}
}
