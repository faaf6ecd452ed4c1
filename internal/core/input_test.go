package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionUp)
	f.Set(ActionPause)

	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("frame should contain Up and Pause")
	}
	if f.Has(ActionDown) {
		t.Error("frame should not contain Down")
	}

	held := f.HeldOnly()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
	if !held.Has(ActionUp) {
		t.Error("HeldOnly copy should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
}

func TestInputFrameHeldOnly(t *testing.T) {
	f := NewInputFrame(ActionUp, ActionDown2, ActionPause, ActionReset, ActionHelp)
	held := f.HeldOnly()

	if !held.Has(ActionUp) || !held.Has(ActionDown2) {
		t.Error("HeldOnly should keep movement actions")
	}
	for _, a := range []Action{ActionPause, ActionReset, ActionHelp} {
		if held.Has(a) {
			t.Errorf("HeldOnly kept edge action %v", a)
		}
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"up", []Action{ActionUp}, -1},
		{"down", []Action{ActionDown}, 1},
		{"both cancel", []Action{ActionUp, ActionDown}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.actions...)
			if got := f.Axis(ActionUp, ActionDown); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionReset.String() != "Reset" {
		t.Errorf("String() = %q, expected Reset", ActionReset.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

func TestStepperAdvance(t *testing.T) {
	step := time.Second / 60
	s := NewStepper(step, 5)

	if n := s.Advance(step / 2); n != 0 {
		t.Errorf("half a tick should produce 0 steps, got %d", n)
	}
	if n := s.Advance(step / 2); n != 1 {
		t.Errorf("accumulated full tick should produce 1 step, got %d", n)
	}
	if n := s.Advance(3 * step); n != 3 {
		t.Errorf("three ticks should produce 3 steps, got %d", n)
	}
}

func TestStepperCapsBacklog(t *testing.T) {
	step := time.Second / 60
	s := NewStepper(step, 5)

	if n := s.Advance(time.Second); n != 5 {
		t.Errorf("stall should be capped at 5 steps, got %d", n)
	}
	if n := s.Advance(step / 2); n != 0 {
		t.Errorf("backlog should be discarded after a cap, got %d steps", n)
	}
}

func TestStepperNegativeElapsed(t *testing.T) {
	s := NewStepper(0, 0)
	if s.Step() != time.Second/60 {
		t.Errorf("default step = %v, expected 1/60s", s.Step())
	}
	if n := s.Advance(-time.Second); n != 0 {
		t.Errorf("negative elapsed should produce 0 steps, got %d", n)
	}
}

func TestSoundEventString(t *testing.T) {
	names := map[SoundEvent]string{
		SoundWallBounce: "wall",
		SoundPaddleHit:  "paddle",
		SoundScore:      "score",
	}
	for ev, want := range names {
		if ev.String() != want {
			t.Errorf("%d.String() = %q, expected %q", ev, ev.String(), want)
		}
	}
}
