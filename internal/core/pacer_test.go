package core

import (
	"testing"
	"time"
)

func TestPacerFiresAtInterval(t *testing.T) {
	p := NewPacer(150 * time.Millisecond)

	if p.Advance(100 * time.Millisecond) {
		t.Error("Expected no tick after 100ms")
	}
	if !p.Advance(60 * time.Millisecond) {
		t.Error("Expected tick after 160ms")
	}
	// 10ms carried over
	if p.Advance(130 * time.Millisecond) {
		t.Error("Expected no tick at 140ms since last tick")
	}
	if !p.Advance(10 * time.Millisecond) {
		t.Error("Expected tick once carry reaches the interval")
	}
}

func TestPacerClampsStall(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)

	if !p.Advance(time.Second) {
		t.Fatal("Expected tick after a long stall")
	}
	// Without the clamp the remaining 900ms would fire nine more times.
	if p.Advance(0) {
		t.Error("Expected a stall to produce a single tick")
	}
	if !p.Advance(time.Nanosecond) {
		t.Error("Expected the clamped leftover to sit just below the interval")
	}
	if p.Advance(0) {
		t.Error("Expected no tick after the leftover was consumed")
	}
}

func TestPacerFrames(t *testing.T) {
	// 60 FPS frames against a 150ms interval.
	p := NewPacer(150 * time.Millisecond)
	frame := time.Second / 60

	ticks := 0
	for range 60 {
		if p.Advance(frame) {
			ticks++
		}
	}
	if ticks != 6 {
		t.Errorf("Expected 6 ticks in one second, got %d", ticks)
	}
}

func TestPacerReset(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)
	p.Advance(90 * time.Millisecond)
	p.Reset()

	if p.Advance(20 * time.Millisecond) {
		t.Error("Expected Reset to drop accumulated time")
	}
}

func TestPacerNonPositiveInterval(t *testing.T) {
	p := NewPacer(0)
	if !p.Advance(0) {
		t.Error("Expected zero interval to fire every call")
	}
}

func TestPacerSetInterval(t *testing.T) {
	p := NewPacer(100 * time.Millisecond)
	p.SetInterval(50 * time.Millisecond)

	if p.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, expected 50ms", p.Interval())
	}
	if !p.Advance(50 * time.Millisecond) {
		t.Error("Expected tick at the new interval")
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventEat}}
	if !r.Has(EventEat) {
		t.Error("Expected Has(EventEat)")
	}
	if r.Has(EventGameOver) {
		t.Error("Expected no game over event")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("NewInputFrame(ActionLeft) = %v", f.Actions)
	}
	f.Set(ActionPause)
	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionLeft) {
		t.Error("Expected Clear to drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should have no actions")
	}
}
