// Package game implements the raincatch gameplay: an input accumulator,
// a player-controlled bucket, and a field of falling drops. It contains
// pure logic with no terminal, audio, or timing dependencies so the whole
// simulation is testable without a platform.
package game

// EventKind discriminates discrete input events delivered by the platform.
type EventKind int

const (
	KeyPressed EventKind = iota
	KeyReleased
	CursorMoved
	ButtonPressed
	ButtonReleased
)

// Key identifies the game-relevant keys. The platform maps physical keys
// (arrows, A/D) onto these; everything else stays in the platform layer.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// Button identifies mouse buttons used by the game.
type Button int

const (
	ButtonPrimary Button = iota
)

// Event is a single discrete input event in world coordinates.
// Cursor and button events carry a position; key events carry a key.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	X, Y   float64
}

// KeyDown creates a key-pressed event.
func KeyDown(k Key) Event {
	return Event{Kind: KeyPressed, Key: k}
}

// KeyUp creates a key-released event.
func KeyUp(k Key) Event {
	return Event{Kind: KeyReleased, Key: k}
}

// CursorTo creates a cursor-moved event at the given world position.
func CursorTo(x, y float64) Event {
	return Event{Kind: CursorMoved, X: x, Y: y}
}

// ButtonDown creates a button-pressed event at the given world position.
func ButtonDown(b Button, x, y float64) Event {
	return Event{Kind: ButtonPressed, Button: b, X: x, Y: y}
}

// ButtonUp creates a button-released event.
func ButtonUp(b Button) Event {
	return Event{Kind: ButtonReleased, Button: b}
}

// Accumulator folds batches of discrete input events into the sticky
// movement state the bucket controller reads each frame. Events are applied
// in arrival order, so later events in a batch override earlier ones.
// It mutates only its own state: no drawing, no audio.
type Accumulator struct {
	movingLeft   bool
	movingRight  bool
	moveToCursor bool
	cursorX      float64
	cursorY      float64
}

// Apply consumes one frame's drained batch of events.
func (a *Accumulator) Apply(batch []Event) {
	for _, ev := range batch {
		switch ev.Kind {
		case KeyPressed:
			switch ev.Key {
			case KeyLeft:
				a.movingLeft = true
			case KeyRight:
				a.movingRight = true
			}
		case KeyReleased:
			switch ev.Key {
			case KeyLeft:
				a.movingLeft = false
			case KeyRight:
				a.movingRight = false
			}
		case CursorMoved:
			a.cursorX = ev.X
			a.cursorY = ev.Y
		case ButtonPressed:
			if ev.Button == ButtonPrimary {
				a.moveToCursor = true
				a.cursorX = ev.X
				a.cursorY = ev.Y
			}
		case ButtonReleased:
			if ev.Button == ButtonPrimary {
				a.moveToCursor = false
			}
		}
	}
}

// Reset clears all sticky state.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
