package reveal

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	DefaultCharsPerSecond = 60.0
	DefaultMaxDuration    = 500.0
)

// Timing controls how long a run lasts. A run of n characters takes
// 1000/CharsPerSecond ms per character, capped at MaxDuration ms.
type Timing struct {
	CharsPerSecond float64
	MaxDuration    float64
}

func DefaultTiming() Timing {
	return Timing{
		CharsPerSecond: DefaultCharsPerSecond,
		MaxDuration:    DefaultMaxDuration,
	}
}

// Valid reports whether t yields a positive duration for any non-empty text.
func (t Timing) Valid() bool {
	return t.CharsPerSecond > 0 && t.MaxDuration > 0 && !math.IsInf(t.CharsPerSecond, 1)
}

func (t Timing) Duration(n int) float64 {
	interval := 1000.0 / t.CharsPerSecond
	return math.Min(interval*float64(n), t.MaxDuration)
}

// TargetLength maps progress through a run to a prefix length. The result is
// not clamped to [0, total]: overshoot past total is what ends a reveal. It is
// saturated to the int32 range so a tiny duration cannot wrap the conversion.
func TargetLength(elapsed, duration float64, total int) int {
	v := math.Round(elapsed * float64(total) / duration)
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

// ShouldContinue is the boundary policy. A reveal keeps going while target is
// at most total, so it issues one extra tick at exactly full length and stops
// on the first overshoot. A conceal keeps going while anything is visible.
func ShouldContinue(d Direction, target, total int) bool {
	if d == Conceal {
		return target > 0
	}
	return target <= total
}

// Length counts user-perceived characters.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncate returns the first n characters of s. Out-of-range n is saturated.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
