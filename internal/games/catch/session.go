package catch

import (
	"time"

	"github.com/vovakirdan/mukbang/internal/config"
	"github.com/vovakirdan/mukbang/internal/core"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseStart    Phase = iota // Waiting for the first confirm
	PhasePlaying               // Round in progress
	PhaseGameOver              // Round ended, waiting for confirm to restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// EndReason records why a round ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeUp
	EndNoLives
)

// String returns a short description of the reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeUp:
		return "time up"
	case EndNoLives:
		return "out of lives"
	default:
		return "none"
	}
}

// InputSource is the per-tick input the session reads.
// Held actions are continuous (movement); pressed actions fire once per press.
type InputSource interface {
	IsHeld(a core.Action) bool
	WasPressed(a core.Action) bool
}

// Settings is the immutable game configuration a session runs with.
type Settings struct {
	ScreenWidth   float64
	ScreenHeight  float64
	Ground        float64
	PlayerSize    float64
	PlayerSpeed   float64
	PlayerY       float64
	ItemSize      float64
	SpawnInterval time.Duration
	RoundSeconds  int
	MaxLives      int
	Catalog       Catalog
	Grades        GradeTable
}

// NewSettings converts a validated configuration into session settings.
func NewSettings(cfg config.CatchConfig) Settings {
	return Settings{
		ScreenWidth:   cfg.Screen.Width,
		ScreenHeight:  cfg.Screen.Height,
		Ground:        cfg.Screen.Ground,
		PlayerSize:    cfg.Player.Size,
		PlayerSpeed:   cfg.Player.Speed,
		PlayerY:       cfg.Screen.Height - cfg.Player.BottomOffset,
		ItemSize:      cfg.Items.Size,
		SpawnInterval: cfg.Items.SpawnInterval(),
		RoundSeconds:  cfg.Round.DurationSecs,
		MaxLives:      cfg.Round.Lives,
		Catalog:       NewCatalog(cfg.Catalog),
		Grades:        NewGradeTable(cfg.Grades),
	}
}

// Session owns all mutable round state. Exactly one Update runs per tick.
type Session struct {
	settings Settings
	spawner  *Spawner

	phase         Phase
	score         int
	lives         int
	timeRemaining int
	items         []FallingItem
	player        Player
	sinceSpawn    time.Duration
	sinceSecond   time.Duration
	endReason     EndReason
	tick          uint64
}

// NewSession creates a session in the start phase.
func NewSession(settings Settings, seed int64) *Session {
	s := &Session{
		settings: settings,
		spawner:  NewSpawner(settings.Catalog, settings.ItemSize, seed),
		items:    make([]FallingItem, 0, 32),
	}
	s.reset()
	return s
}

// reset restores round state. Start and restart share it.
// The random source is not reseeded so a whole run replays from one seed.
func (s *Session) reset() {
	s.phase = PhaseStart
	s.score = 0
	s.lives = s.settings.MaxLives
	s.timeRemaining = s.settings.RoundSeconds
	s.items = s.items[:0]
	s.player = Player{
		X:           s.settings.ScreenWidth / 2,
		Y:           s.settings.PlayerY,
		Size:        s.settings.PlayerSize,
		Speed:       s.settings.PlayerSpeed,
		ScreenWidth: s.settings.ScreenWidth,
	}
	s.sinceSpawn = 0
	s.sinceSecond = 0
	s.endReason = EndNone
	s.tick = 0
}

// Update advances the session by one tick with dt of elapsed real time.
// It returns true when the player asked to quit, in any phase.
func (s *Session) Update(in InputSource, dt time.Duration) (quit bool) {
	if in.WasPressed(core.ActionQuit) {
		return true
	}

	switch s.phase {
	case PhaseStart, PhaseGameOver:
		if in.WasPressed(core.ActionConfirm) {
			s.reset()
			s.phase = PhasePlaying
		}
	case PhasePlaying:
		s.step(in, dt)
	}
	return false
}

// step runs one playing tick: move, timers, spawn, fall, catch, cull.
func (s *Session) step(in InputSource, dt time.Duration) {
	s.tick++

	// Left then right: holding both cancels out unless the first move clamped.
	if in.IsHeld(core.ActionLeft) {
		s.player.Move(-1)
	}
	if in.IsHeld(core.ActionRight) {
		s.player.Move(1)
	}

	s.sinceSecond += dt
	if s.sinceSecond >= time.Second {
		s.timeRemaining--
		s.sinceSecond = 0
		if s.timeRemaining <= 0 {
			s.timeRemaining = 0
			s.end(EndTimeUp)
			return
		}
	}

	s.sinceSpawn += dt
	if s.sinceSpawn >= s.settings.SpawnInterval {
		s.items = append(s.items, s.spawner.Spawn(s.settings.ScreenWidth))
		s.sinceSpawn = 0
	}

	for i := range s.items {
		s.items[i].Advance()
	}

	res := Resolve(s.player, s.items)
	s.score += res.ScoreDelta
	s.lives += res.LifeDelta
	s.items = removeIndices(s.items, res.Consumed)
	if s.lives <= 0 {
		s.lives = 0
		s.end(EndNoLives)
		return
	}

	kept := s.items[:0]
	for _, it := range s.items {
		if !it.OffScreen(s.settings.ScreenHeight) {
			kept = append(kept, it)
		}
	}
	s.items = kept
}

func (s *Session) end(reason EndReason) {
	s.phase = PhaseGameOver
	s.endReason = reason
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// TimeRemaining returns the whole seconds left in the round.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// EndReason returns why the last round ended.
func (s *Session) EndReason() EndReason { return s.endReason }

// Grade evaluates the current score.
func (s *Session) Grade() Grade { return s.settings.Grades.Evaluate(s.score) }

// Settings returns the configuration the session runs with.
func (s *Session) Settings() Settings { return s.settings }

// Snapshot is a consistent copy of session state for rendering and tests.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Score         int
	Lives         int
	MaxLives      int
	TimeRemaining int
	Player        Player
	Items         []FallingItem
	Grade         Grade
	EndReason     EndReason
}

// Snapshot copies the current state. The item slice is not shared.
func (s *Session) Snapshot() Snapshot {
	items := make([]FallingItem, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Tick:          s.tick,
		Phase:         s.phase,
		Score:         s.score,
		Lives:         s.lives,
		MaxLives:      s.settings.MaxLives,
		TimeRemaining: s.timeRemaining,
		Player:        s.player,
		Items:         items,
		Grade:         s.Grade(),
		EndReason:     s.endReason,
	}
}
