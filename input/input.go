package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Type int

const (
	KeyDown Type = iota
	KeyUp
	MouseDown
	MouseUp
	// User events are posted by the game itself.
	User
)

func (t Type) String() string {
	switch t {
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case User:
		return "User"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type Event struct {
	Type   Type
	Key    ebiten.Key
	Button ebiten.MouseButton
	X, Y   int
	// Name tags User events.
	Name string
}

func (e Event) String() string {
	switch e.Type {
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s(%s)", e.Type, e.Key)
	case MouseDown, MouseUp:
		return fmt.Sprintf("%s(%d at %d,%d)", e.Type, e.Button, e.X, e.Y)
	case User:
		return fmt.Sprintf("%s(%s)", e.Type, e.Name)
	}
	return e.Type.String()
}

// IsKeyDown reports whether e is a press of key.
func (e Event) IsKeyDown(key ebiten.Key) bool {
	return e.Type == KeyDown && e.Key == key
}

// IsUser reports whether e is a User event called name.
func (e Event) IsUser(name string) bool {
	return e.Type == User && e.Name == name
}

var buttons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle}

// Poll appends the key and mouse transitions of the current tick to dst.
// Releases come before presses.
func Poll(dst []Event) []Event {
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		dst = append(dst, Event{Type: KeyUp, Key: k})
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		dst = append(dst, Event{Type: KeyDown, Key: k})
	}

	x, y := ebiten.CursorPosition()
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustReleased(b) {
			dst = append(dst, Event{Type: MouseUp, Button: b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustPressed(b) {
			dst = append(dst, Event{Type: MouseDown, Button: b, X: x, Y: y})
		}
	}
	return dst
}

// Queue holds events posted by the game, delivered on the next tick.
type Queue struct {
	pending []Event
}

func (q *Queue) Post(ev Event) {
	q.pending = append(q.pending, ev)
}

// Drain returns the posted events in order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

func (q *Queue) Len() int {
	return len(q.pending)
}
