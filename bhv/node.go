// Package bhv implements small behavior trees. A tree is a Node; each frame
// the owner calls Update until the node reports Success or Failure, then
// calls Start before running it again.
package bhv

import "fmt"

type State int

const (
	Success State = iota
	Failure
	Running
)

func (s State) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts the lower-case state name used by scripts.
func ParseState(s string) (State, error) {
	switch s {
	case "success":
		return Success, nil
	case "failure":
		return Failure, nil
	case "running":
		return Running, nil
	}
	return Failure, fmt.Errorf("bhv: unknown state %q", s)
}

// Node is a unit of behavior. dt is the frame time in milliseconds.
type Node interface {
	Start()
	Update(dt int) State
}

// parent is implemented by composites and decorators.
type parent interface {
	children() []Node
}

// Err returns the first error reported by a node in the tree rooted at n,
// searching depth first.
func Err(n Node) error {
	if f, ok := n.(interface{ Err() error }); ok {
		if err := f.Err(); err != nil {
			return err
		}
	}
	if p, ok := n.(parent); ok {
		for _, c := range p.children() {
			if err := Err(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Nop always succeeds.
type Nop struct{}

func (Nop) Start() {}

func (Nop) Update(int) State { return Success }

// Wait runs for Duration milliseconds and then succeeds.
type Wait struct {
	Duration int
	elapsed  int
}

func (w *Wait) Start() { w.elapsed = 0 }

func (w *Wait) Update(dt int) State {
	w.elapsed += dt
	if w.elapsed >= w.Duration {
		return Success
	}
	return Running
}
