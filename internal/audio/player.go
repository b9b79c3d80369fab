// Package audio provides the speaker-backed sound output for raincatch.
// All sounds are generated streamers; no audio assets are shipped.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the audio device. A persistent mixer plays through a master
// volume stage; one-shot sounds are added to the mixer and drain on their
// own.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	master *effects.Volume
	open   bool
}

// NewPlayer creates an unopened player.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Open initializes the audio device and starts the mixer at the given
// master volume (0.0 to 1.0). It must be called once before any Play call.
func (p *Player) Open(masterVolume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	p.master = volumeStage(p.mixer, masterVolume)
	speaker.Play(p.master)
	p.open = true
	return nil
}

// Close stops all sounds and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.open = false
}

// SetVolume updates the master volume (0.0 to 1.0).
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}

	vol = math.Min(math.Max(vol, 0), 1)
	speaker.Lock()
	if vol == 0 {
		p.master.Silent = true
	} else {
		p.master.Silent = false
		p.master.Volume = math.Log2(vol)
	}
	speaker.Unlock()
}

// PlayCollect fires the one-shot chime for a caught drop.
func (p *Player) PlayCollect() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}

	chime := NewChimeGenerator(sampleRate)
	streamer := beep.Take(sampleRate.N(chime.Duration()), chime)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// volumeStage wraps a streamer in a logarithmic master volume control.
func volumeStage(s beep.Streamer, vol float64) *effects.Volume {
	vol = math.Min(math.Max(vol, 0), 1)
	if vol == 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
