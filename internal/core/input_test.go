package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.WasPressed(ActionConfirm) || f.IsHeld(ActionLeft) {
		t.Fatal("zero frame should report nothing")
	}

	f.Set(ActionConfirm)
	f.Hold(ActionLeft)

	if !f.WasPressed(ActionConfirm) {
		t.Error("Confirm should be pressed")
	}
	if f.IsHeld(ActionConfirm) {
		t.Error("pressed action should not count as held")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held")
	}

	f.Clear()
	if f.WasPressed(ActionConfirm) || f.IsHeld(ActionLeft) {
		t.Error("Clear should reset pressed and held actions")
	}
}

func TestHoldTracker(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewHoldTracker(100 * time.Millisecond)
	h.Press(ActionLeft, base)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"immediately", 0, true},
		{"inside window", 99 * time.Millisecond, true},
		{"at window edge", 100 * time.Millisecond, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			h.Apply(&f, base.Add(tc.at))
			if got := f.IsHeld(ActionLeft); got != tc.expected {
				t.Errorf("IsHeld(Left) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	now := time.Now()
	h := NewHoldTracker(time.Second)
	h.Press(ActionLeft, now)
	h.Press(ActionRight, now)
	h.Release(ActionLeft)

	f := NewInputFrame()
	h.Apply(&f, now)

	if f.IsHeld(ActionLeft) {
		t.Error("released action should not be held")
	}
	if !f.IsHeld(ActionRight) {
		t.Error("other action should stay held")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionQuit.String() != "Quit" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
