package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// keyClicks synthesizes a short burst of typewriter key strikes: each strike
// is a noise transient over a damped low tone.
type keyClicks struct {
	rate     beep.SampleRate
	rng      *rand.Rand
	spacing  int
	strike   int
	total    int
	position int
}

// NewKeyClicks returns n strikes spaced by gap.
func NewKeyClicks(rate beep.SampleRate, n int, gap time.Duration) beep.Streamer {
	spacing := rate.N(gap)
	strike := rate.N(12 * time.Millisecond)
	if strike > spacing {
		strike = spacing
	}
	return &keyClicks{
		rate:    rate,
		rng:     rand.New(rand.NewSource(1)),
		spacing: spacing,
		strike:  strike,
		total:   spacing * n,
	}
}

func (k *keyClicks) Stream(samples [][2]float64) (n int, ok bool) {
	if k.position >= k.total {
		return 0, false
	}
	for i := range samples {
		if k.position >= k.total {
			return i, true
		}

		val := 0.0
		if off := k.position % k.spacing; off < k.strike {
			t := float64(off) / float64(k.rate)
			decay := math.Exp(-t * 400)
			noise := k.rng.Float64()*2 - 1
			tone := math.Sin(2 * math.Pi * 180 * t)
			val = 0.4 * decay * (0.7*noise + 0.3*tone)
		}

		samples[i][0] = val
		samples[i][1] = val
		k.position++
	}
	return len(samples), true
}

func (k *keyClicks) Err() error { return nil }
