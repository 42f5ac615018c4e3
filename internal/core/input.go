package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (continuous)
	ActionRight          // D, Right arrow - move right (continuous)
	ActionConfirm        // Space, Enter - start or restart a round
	ActionQuit           // Q, Esc, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for one simulation tick.
// Pressed holds edge-triggered actions that fire once per physical press;
// Held holds continuous actions that are down during this tick.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an edge-triggered action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks a continuous action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// WasPressed reports whether the action was pressed this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// IsHeld reports whether the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// HoldTracker turns key press events into held state.
// Terminals only report presses (and auto-repeat), so a key counts as held
// until window has passed since its last press.
type HoldTracker struct {
	window time.Duration
	last   map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[Action]time.Time),
	}
}

// Press records a press of a at the given time.
func (h *HoldTracker) Press(a Action, at time.Time) {
	h.last[a] = at
}

// Release forgets any pending hold for a.
func (h *HoldTracker) Release(a Action) {
	delete(h.last, a)
}

// Apply marks every action pressed within the hold window as held in frame.
func (h *HoldTracker) Apply(frame *InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) < h.window {
			frame.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}
