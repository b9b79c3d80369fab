package game

import (
	"raincatch/internal/core"
)

// Bucket is the player-controlled catcher anchored to the bottom of the
// playfield. Only its x position changes after creation.
type Bucket struct {
	X, Y float64
	W, H float64
}

// Rect returns the bucket's current bounding box.
func (b Bucket) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Advance applies one frame of horizontal movement from the folded input
// state. Holding left and right together cancels out. When pointer-drag
// mode is active the bucket snaps so its center sits under the cursor,
// overriding key movement. The final position is clamped to
// [0, fieldW - b.W]; displacement past a bound is discarded, not reflected.
func (b *Bucket) Advance(in *Accumulator, dt, speed, fieldW float64) {
	var dx float64
	if in.movingLeft {
		dx -= speed * dt
	}
	if in.movingRight {
		dx += speed * dt
	}
	if in.moveToCursor {
		dx = in.cursorX - b.X - b.W/2
	}
	b.X = core.Clamp(b.X+dx, 0, fieldW-b.W)
}
