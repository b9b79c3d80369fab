package game

import (
	"math/rand"

	"raincatch/internal/config"
	"raincatch/internal/core"
)

// Drop is a transient falling entity. Once removed from the live set it is
// never revisited.
type Drop struct {
	X, Y float64
	W, H float64
}

// Rect returns the drop's current bounding box.
func (d Drop) Rect() core.Rect {
	return core.NewRect(d.X, d.Y, d.W, d.H)
}

// DropField owns the live drop set: the spawn timer, fall simulation,
// collision against the bucket, and lifetime culling.
type DropField struct {
	cfg            config.DropsConfig
	fieldW, fieldH float64
	drops          []Drop
	spawnTimer     float64
	rng            *rand.Rand
}

// NewDropField creates a drop field for the given playfield dimensions.
func NewDropField(cfg config.DropsConfig, fieldW, fieldH float64, seed int64) *DropField {
	f := &DropField{
		cfg:    cfg,
		fieldW: fieldW,
		fieldH: fieldH,
		drops:  make([]Drop, 0, 16),
	}
	f.Reset(seed)
	return f
}

// Reset clears all drops and reseeds the RNG.
func (f *DropField) Reset(seed int64) {
	f.drops = f.drops[:0]
	f.spawnTimer = 0
	f.rng = rand.New(rand.NewSource(seed))
}

// Drops returns the live drops, oldest first.
func (f *DropField) Drops() []Drop {
	return f.drops
}

// Update advances the field by dt seconds: timed spawning first, then fall
// integration, then collision and lifetime culling. Returns how many drops
// were collected by the bucket and how many expired past the bottom edge.
func (f *DropField) Update(dt float64, bucket core.Rect) (collected, missed int) {
	// The timer carries its remainder forward so the cadence stays
	// drift-free under variable frame time, and keeps subtracting so a
	// long stall still yields every owed spawn.
	f.spawnTimer += dt
	for f.spawnTimer >= f.cfg.SpawnInterval {
		f.spawnTimer -= f.cfg.SpawnInterval
		f.spawn()
	}

	for i := range f.drops {
		f.drops[i].Y -= f.cfg.Speed * dt
	}

	// Reverse index iteration so in-place removal neither skips nor
	// double-visits an element, and relative order is preserved.
	fifo := f.cfg.Mode == config.ModeFIFO
	for i := len(f.drops) - 1; i >= 0; i-- {
		d := f.drops[i]

		// Collection takes precedence over expiry. The FIFO variant
		// disables collision entirely; drops leave only by eviction
		// or expiry.
		if !fifo && d.Rect().Intersects(bucket) {
			f.remove(i)
			collected++
			continue
		}
		if d.Y < -d.H {
			f.remove(i)
			missed++
		}
	}

	return collected, missed
}

// spawn creates one drop at a uniformly random x along the top edge.
// In FIFO mode a full queue evicts its oldest drop first.
func (f *DropField) spawn() {
	if f.cfg.Mode == config.ModeFIFO && len(f.drops) >= f.cfg.MaxLive {
		f.remove(0)
	}
	f.drops = append(f.drops, Drop{
		X: f.rng.Float64() * (f.fieldW - f.cfg.Width),
		Y: f.fieldH,
		W: f.cfg.Width,
		H: f.cfg.Height,
	})
}

// remove deletes the drop at index i, preserving relative order.
func (f *DropField) remove(i int) {
	f.drops = append(f.drops[:i], f.drops[i+1:]...)
}
