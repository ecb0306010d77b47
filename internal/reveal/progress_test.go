package reveal

import (
	"math"
	"testing"
)

func TestDuration(t *testing.T) {
	timing := DefaultTiming()
	for n := 1; n <= 100; n++ {
		want := math.Min((1000.0/60.0)*float64(n), 500.0)
		if got := timing.Duration(n); got != want {
			t.Errorf("n=%d: expected %f, got %f", n, want, got)
		}
		if timing.Duration(n) <= 0 {
			t.Errorf("n=%d: duration must be positive", n)
		}
	}

	if got := timing.Duration(1000); got != 500 {
		t.Errorf("expected long text capped at 500, got %f", got)
	}
}

func TestTimingValid(t *testing.T) {
	tests := []struct {
		name   string
		timing Timing
		valid  bool
	}{
		{"default", DefaultTiming(), true},
		{"zero rate", Timing{CharsPerSecond: 0, MaxDuration: 500}, false},
		{"negative rate", Timing{CharsPerSecond: -1, MaxDuration: 500}, false},
		{"zero cap", Timing{CharsPerSecond: 60, MaxDuration: 0}, false},
		{"infinite rate", Timing{CharsPerSecond: math.Inf(1), MaxDuration: 500}, false},
		{"nan cap", Timing{CharsPerSecond: 60, MaxDuration: math.NaN()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.timing.Valid(); got != tt.valid {
				t.Errorf("expected %v, got %v", tt.valid, got)
			}
		})
	}
}

func TestTargetLength(t *testing.T) {
	d := DefaultTiming().Duration(4)

	tests := []struct {
		elapsed float64
		want    int
	}{
		{0, 0},
		{33.33, 2},
		{66.67, 4},
		{80, 5},
		{-10, -1},
	}

	for _, tt := range tests {
		if got := TargetLength(tt.elapsed, d, 4); got != tt.want {
			t.Errorf("elapsed %.2f: expected %d, got %d", tt.elapsed, tt.want, got)
		}
	}
}

func TestTargetLengthSaturates(t *testing.T) {
	d := Timing{CharsPerSecond: 1e300, MaxDuration: DefaultMaxDuration}.Duration(4)

	if got := TargetLength(16.67, d, 4); got != math.MaxInt32 {
		t.Errorf("expected %d, got %d", math.MaxInt32, got)
	}
	if got := TargetLength(d-16.67, d, 4); got != math.MinInt32 {
		t.Errorf("expected %d, got %d", math.MinInt32, got)
	}
	if ShouldContinue(Reveal, TargetLength(16.67, d, 4), 4) {
		t.Error("reveal with a near-zero duration should stop on the first tick")
	}
}

func TestTargetLengthMonotonic(t *testing.T) {
	d := DefaultTiming().Duration(37)
	prev := TargetLength(0, d, 37)
	for e := 0.25; e < 2*d; e += 0.25 {
		cur := TargetLength(e, d, 37)
		if cur < prev {
			t.Fatalf("target decreased at elapsed %.2f: %d -> %d", e, prev, cur)
		}
		prev = cur
	}
}

func TestShouldContinue(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		target int
		want   bool
	}{
		{"reveal start", Reveal, 0, true},
		{"reveal middle", Reveal, 2, true},
		{"reveal full", Reveal, 4, true},
		{"reveal overshoot", Reveal, 5, false},
		{"conceal full", Conceal, 4, true},
		{"conceal one left", Conceal, 1, true},
		{"conceal empty", Conceal, 0, false},
		{"conceal negative", Conceal, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldContinue(tt.dir, tt.target, 4); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"abcd", 0, ""},
		{"abcd", -3, ""},
		{"abcd", 2, "ab"},
		{"abcd", 4, "abcd"},
		{"abcd", 9, "abcd"},
		{"héllo", 2, "hé"},
		{"a👍🏽b", 2, "a👍🏽"},
		{"", 3, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.s, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.s, tt.n, tt.want, got)
		}
	}
}

func TestLength(t *testing.T) {
	if got := Length("a👍🏽b"); got != 3 {
		t.Errorf("expected 3 characters, got %d", got)
	}
	if got := Length(""); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
