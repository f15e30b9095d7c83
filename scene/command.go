package scene

// CommandKind names what a Command asks the director to do.
type CommandKind int

const (
	KindContinue CommandKind = iota
	KindPush
	KindPop
	KindPopAll
)

func (k CommandKind) String() string {
	switch k {
	case KindContinue:
		return "continue"
	case KindPush:
		return "push"
	case KindPop:
		return "pop"
	case KindPopAll:
		return "pop all"
	}
	return "unknown"
}

// Command is returned from Scene.Input to drive the scene stack. The zero
// value continues.
type Command struct {
	kind  CommandKind
	scene Scene
}

func Continue() Command { return Command{kind: KindContinue} }

// Push covers the current scene with s.
func Push(s Scene) Command { return Command{kind: KindPush, scene: s} }

// Pop removes the current scene.
func Pop() Command { return Command{kind: KindPop} }

// PopAll empties the stack, which ends the game.
func PopAll() Command { return Command{kind: KindPopAll} }

func (c Command) Kind() CommandKind { return c.kind }

// Scene is the scene carried by a push.
func (c Command) Scene() Scene { return c.scene }
