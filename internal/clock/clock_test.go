package clock

import (
	"testing"
	"time"
)

func TestWallIsMonotonic(t *testing.T) {
	w := NewWall()
	a := w.Now()
	time.Sleep(2 * time.Millisecond)
	b := w.Now()

	if a < 0 {
		t.Errorf("expected non-negative start, got %f", a)
	}
	if b <= a {
		t.Errorf("expected clock to advance, got %f then %f", a, b)
	}
	if b-a < 1 {
		t.Errorf("expected at least 1ms to pass, got %f", b-a)
	}
}

func TestManual(t *testing.T) {
	m := NewManual(10)
	if m.Now() != 10 {
		t.Fatalf("expected 10, got %f", m.Now())
	}

	m.Advance(16.5)
	if m.Now() != 26.5 {
		t.Errorf("expected 26.5, got %f", m.Now())
	}

	m.Set(0)
	if m.Now() != 0 {
		t.Errorf("expected 0, got %f", m.Now())
	}
}
