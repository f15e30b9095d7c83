package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrKeyInUse is returned when binding a key that another action owns.
var ErrKeyInUse = errors.New("profile: key already bound")

// Action is a bindable player action.
type Action int

const (
	EnterDoor Action = iota
	Left
	Right
	Down
	Jump
	Powerup1
	Powerup2

	actionCount
)

var actionNames = [actionCount]string{
	EnterDoor: "enter_door",
	Left:      "left",
	Right:     "right",
	Down:      "down",
	Jump:      "jump",
	Powerup1:  "powerup_1",
	Powerup2:  "powerup_2",
}

var actionLabels = [actionCount]string{
	EnterDoor: "Enter door",
	Left:      "Left",
	Right:     "Right",
	Down:      "Down",
	Jump:      "Jump",
	Powerup1:  "Powerup 1",
	Powerup2:  "Powerup 2",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Label is the human readable name shown in menus.
func (a Action) Label() string {
	if a < 0 || a >= actionCount {
		return a.String()
	}
	return actionLabels[a]
}

// Actions lists every action in menu order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

type Controls struct {
	EnterDoor ebiten.Key
	Left      ebiten.Key
	Right     ebiten.Key
	Down      ebiten.Key
	Jump      ebiten.Key
	Powerup1  ebiten.Key
	Powerup2  ebiten.Key
}

func DefaultControls() Controls {
	return Controls{
		EnterDoor: ebiten.KeyW,
		Left:      ebiten.KeyA,
		Right:     ebiten.KeyD,
		Down:      ebiten.KeyS,
		Jump:      ebiten.KeySpace,
		Powerup1:  ebiten.KeyDigit1,
		Powerup2:  ebiten.KeyDigit2,
	}
}

func (c *Controls) slot(a Action) *ebiten.Key {
	switch a {
	case EnterDoor:
		return &c.EnterDoor
	case Left:
		return &c.Left
	case Right:
		return &c.Right
	case Down:
		return &c.Down
	case Jump:
		return &c.Jump
	case Powerup1:
		return &c.Powerup1
	case Powerup2:
		return &c.Powerup2
	}
	return nil
}

// Key returns the key bound to a.
func (c Controls) Key(a Action) ebiten.Key {
	if k := c.slot(a); k != nil {
		return *k
	}
	return -1
}

// List returns the bound keys in menu order.
func (c Controls) List() []ebiten.Key {
	out := make([]ebiten.Key, 0, actionCount)
	for _, a := range Actions() {
		out = append(out, c.Key(a))
	}
	return out
}

// Used reports whether any action is bound to key.
func (c Controls) Used(key ebiten.Key) bool {
	_, ok := c.ActionFor(key)
	return ok
}

// ActionFor returns the action bound to key.
func (c Controls) ActionFor(key ebiten.Key) (Action, bool) {
	for _, a := range Actions() {
		if c.Key(a) == key {
			return a, true
		}
	}
	return 0, false
}

// Set binds a to key. Rebinding an action to its own key is allowed; taking
// a key from another action is not.
func (c *Controls) Set(a Action, key ebiten.Key) error {
	slot := c.slot(a)
	if slot == nil {
		return fmt.Errorf("profile: unknown action %s", a)
	}
	if owner, ok := c.ActionFor(key); ok && owner != a {
		return fmt.Errorf("%w: %s is bound to %s", ErrKeyInUse, KeyName(key), owner)
	}
	*slot = key
	return nil
}

// KeyName returns the name used for key in profile files.
func KeyName(key ebiten.Key) string {
	return key.String()
}

// ParseKey is the inverse of KeyName. Matching ignores case.
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return -1, fmt.Errorf("profile: unknown key %q", name)
}

func (c Controls) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, actionCount)
	for _, a := range Actions() {
		out[a.String()] = KeyName(c.Key(a))
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a binding map. Actions missing from the map keep their
// current key.
func (c *Controls) UnmarshalJSON(data []byte) error {
	var in map[string]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	next := *c
	for _, a := range Actions() {
		name, ok := in[a.String()]
		if !ok {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
		*next.slot(a) = key
	}
	seen := make(map[ebiten.Key]Action, actionCount)
	for _, a := range Actions() {
		k := next.Key(a)
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w: %s is bound to %s and %s", ErrKeyInUse, KeyName(k), prev, a)
		}
		seen[k] = a
	}
	*c = next
	return nil
}
