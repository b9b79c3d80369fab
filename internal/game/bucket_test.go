package game

import (
	"math/rand"
	"testing"
)

const (
	testFieldW = 800.0
	testSpeed  = 400.0
)

func TestBucketAdvance(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		batch []Event
		dt    float64
		want  float64
	}{
		{
			name:  "hold left at the left clamp stays put",
			start: 0,
			batch: []Event{KeyDown(KeyLeft)},
			dt:    0.1,
			want:  0,
		},
		{
			name:  "hold right for a full second clamps at the right edge",
			start: 400,
			batch: []Event{KeyDown(KeyRight)},
			dt:    1.0,
			want:  700, // raw target 800, clamped to 800 - 100
		},
		{
			name:  "plain right movement",
			start: 100,
			batch: []Event{KeyDown(KeyRight)},
			dt:    0.25,
			want:  200,
		},
		{
			name:  "plain left movement",
			start: 300,
			batch: []Event{KeyDown(KeyLeft)},
			dt:    0.5,
			want:  100,
		},
		{
			name:  "opposite holds cancel",
			start: 350,
			batch: []Event{KeyDown(KeyLeft), KeyDown(KeyRight)},
			dt:    0.5,
			want:  350,
		},
		{
			name:  "zero delta is a no-op",
			start: 123,
			batch: []Event{KeyDown(KeyRight)},
			dt:    0,
			want:  123,
		},
		{
			name:  "drag snaps center under the cursor",
			start: 0,
			batch: []Event{ButtonDown(ButtonPrimary, 400, 50)},
			dt:    0.016,
			want:  350, // cursor 400 minus half the bucket width
		},
		{
			name:  "drag overrides held keys",
			start: 0,
			batch: []Event{KeyDown(KeyRight), ButtonDown(ButtonPrimary, 200, 50)},
			dt:    0.016,
			want:  150,
		},
		{
			name:  "drag past the edge clamps",
			start: 300,
			batch: []Event{ButtonDown(ButtonPrimary, 795, 50)},
			dt:    0.016,
			want:  700,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Bucket{X: tc.start, W: 100, H: 50}
			var in Accumulator
			in.Apply(tc.batch)

			b.Advance(&in, tc.dt, testSpeed, testFieldW)

			if b.X != tc.want {
				t.Errorf("bucket.X = %g, expected %g", b.X, tc.want)
			}
		})
	}
}

func TestBucketStaysClampedUnderRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bucket{X: 400, W: 100, H: 50}
	var in Accumulator

	for i := 0; i < 1000; i++ {
		var batch []Event
		switch rng.Intn(5) {
		case 0:
			batch = append(batch, KeyDown(KeyLeft))
		case 1:
			batch = append(batch, KeyDown(KeyRight))
		case 2:
			batch = append(batch, KeyUp(KeyLeft), KeyUp(KeyRight))
		case 3:
			batch = append(batch, ButtonDown(ButtonPrimary, rng.Float64()*1000-100, 50))
		case 4:
			batch = append(batch, ButtonUp(ButtonPrimary))
		}
		in.Apply(batch)

		b.Advance(&in, rng.Float64()*0.1, testSpeed, testFieldW)

		if b.X < 0 || b.X > testFieldW-b.W {
			t.Fatalf("iteration %d: bucket.X = %g escaped [0, %g]", i, b.X, testFieldW-b.W)
		}
	}
}
