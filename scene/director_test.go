package scene

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs lifecycle calls into a shared journal.
type recorder struct {
	Base
	name    string
	journal *[]string
	next    Command
	updates int
	draws   int
}

func (r *recorder) Enter(*Context) { *r.journal = append(*r.journal, "enter "+r.name) }
func (r *recorder) Exit()          { *r.journal = append(*r.journal, "exit "+r.name) }
func (r *recorder) Input(input.Event) Command {
	cmd := r.next
	r.next = Continue()
	return cmd
}
func (r *recorder) Update(int)         { r.updates++ }
func (r *recorder) Draw(*ebiten.Image) { r.draws++ }

func newRecorders(n int, journal *[]string) []*recorder {
	out := make([]*recorder, n)
	for i := range out {
		out[i] = &recorder{name: fmt.Sprint(i), journal: journal}
	}
	return out
}

func TestDirectorPushPop(t *testing.T) {
	const n = 4
	var journal []string
	d := NewDirector(nil)
	scenes := newRecorders(n, &journal)

	for _, s := range scenes {
		d.Push(s)
	}
	assert.Equal(t, n, d.Len())
	assert.Same(t, scenes[n-1], d.Current())

	for i := n - 1; i >= 0; i-- {
		popped, err := d.Pop()
		require.NoError(t, err)
		assert.Same(t, scenes[i], popped)
	}
	assert.True(t, d.Done())
	assert.Nil(t, d.Current())

	_, err := d.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)

	exits := 0
	for _, line := range journal {
		if line[:4] == "exit" {
			exits++
		}
	}
	assert.Equal(t, 2*n-1, exits, "every scene exits when covered or popped")
	for _, s := range scenes {
		assert.Contains(t, journal, "exit "+s.name)
	}
}

func TestDirectorEnterExitAlternate(t *testing.T) {
	var journal []string
	d := NewDirector(nil)
	s := newRecorders(2, &journal)

	d.Push(s[0])
	d.Push(s[1])
	_, err := d.Pop()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"enter 0",
		"exit 0", "enter 1",
		"exit 1", "enter 0",
	}, journal)
}

func TestDirectorPopAll(t *testing.T) {
	var journal []string
	d := NewDirector(nil)
	for _, s := range newRecorders(3, &journal) {
		d.Push(s)
	}
	journal = journal[:0]

	d.PopAll()

	assert.True(t, d.Done())
	assert.Equal(t, []string{"exit 2"}, journal)
	d.PopAll()
	assert.Equal(t, []string{"exit 2"}, journal)
}

func TestDirectorInputExecutesCommands(t *testing.T) {
	var journal []string
	d := NewDirector(nil)
	s := newRecorders(2, &journal)
	d.Push(s[0])

	tests := []struct {
		name    string
		cmd     Command
		wantLen int
		wantErr error
	}{
		{"continue", Continue(), 1, nil},
		{"zero value continues", Command{}, 1, nil},
		{"push", Push(s[1]), 2, nil},
		{"pop", Pop(), 1, nil},
		{"pop all", PopAll(), 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.Current().(*recorder).next = tt.cmd
			err := d.Input(input.Event{Type: input.KeyDown, Key: ebiten.KeyA})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantLen, d.Len())
		})
	}

	assert.NoError(t, d.Input(input.Event{}), "input on an empty stack is ignored")
}

func TestDirectorExecutePopEmpty(t *testing.T) {
	d := NewDirector(nil)
	assert.ErrorIs(t, d.Execute(Pop()), ErrEmptyStack)
	assert.Error(t, d.Execute(Command{kind: CommandKind(42)}))
}

func TestDirectorForwardsFrame(t *testing.T) {
	var journal []string
	d := NewDirector(nil)
	s := newRecorders(2, &journal)
	d.Push(s[0])
	d.Push(s[1])

	d.Update(16)
	d.Draw(nil)

	assert.Equal(t, 0, s[0].updates)
	assert.Equal(t, 1, s[1].updates)
	assert.Equal(t, 1, s[1].draws)

	d.PopAll()
	d.Update(16)
	d.Draw(nil)
}

func TestCommandKinds(t *testing.T) {
	s := &recorder{}
	assert.Equal(t, KindContinue, Continue().Kind())
	assert.Equal(t, KindPush, Push(s).Kind())
	assert.Same(t, s, Push(s).Scene())
	assert.Equal(t, KindPop, Pop().Kind())
	assert.Equal(t, KindPopAll, PopAll().Kind())
	assert.Equal(t, "pop all", KindPopAll.String())
}

func TestContextPostDrain(t *testing.T) {
	ctx := &Context{}
	ctx.Post(input.Event{Type: input.User, Name: "a"})
	ctx.Post(input.Event{Type: input.User, Name: "b"})

	got := ctx.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Empty(t, ctx.Drain())
}
