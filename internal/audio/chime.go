package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chime note timing and pitch. Two short square-wave notes a fourth apart,
// in the style of a coin pickup.
const (
	chimeNote1Freq = 987.77  // B5
	chimeNote2Freq = 1318.51 // E6
	chimeNote1Dur  = 70 * time.Millisecond
	chimeNote2Dur  = 140 * time.Millisecond
	chimeAttack    = 5 * time.Millisecond
	chimeRelease   = 40 * time.Millisecond
)

// ChimeGenerator streams the collection chime: note one, then note two,
// each with a linear attack/release envelope.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime generator at the given sample rate.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

// Duration returns the total chime length.
func (g *ChimeGenerator) Duration() time.Duration {
	return chimeNote1Dur + chimeNote2Dur
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	note1Samples := g.sr.N(chimeNote1Dur)
	total := g.sr.N(g.Duration())

	for i := range samples {
		if g.pos >= total {
			return i, i > 0
		}

		freq := chimeNote1Freq
		notePos := g.pos
		noteLen := note1Samples
		if g.pos >= note1Samples {
			freq = chimeNote2Freq
			notePos = g.pos - note1Samples
			noteLen = total - note1Samples
		}

		t := float64(g.pos) / float64(g.sr)

		// Square wave softened with a couple of sine harmonics
		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*freq*t)
		sample += 0.10 * math.Sin(2*math.Pi*freq*2*t)
		sample *= envelope(notePos, noteLen, g.sr)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// envelope returns a linear attack/release gain for the given position
// within a note.
func envelope(pos, total int, sr beep.SampleRate) float64 {
	attack := sr.N(chimeAttack)
	release := sr.N(chimeRelease)

	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}

	switch {
	case pos < attack && attack > 0:
		return float64(pos) / float64(attack)
	case pos >= releaseStart && release > 0:
		remaining := float64(total-pos) / float64(release)
		return math.Min(remaining, 1.0)
	default:
		return 1.0
	}
}
