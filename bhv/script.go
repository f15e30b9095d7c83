package bhv

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// A script must define
//
//	start := func(host, state) { ... }
//	update := func(host, state, dt) { return "running" }
//
// update returns "success", "failure" or "running". state is a map kept for
// the lifetime of the node; host holds the functions supplied by the owner.
const scriptDispatch = `
__result := "success"
if __phase == "start" {
	start(__host, __state)
} else if __phase == "update" {
	__result = update(__host, __state, __dt)
}
`

var scriptModules = []string{"math", "rand", "text", "fmt"}

// Script is a leaf node whose behavior is written in tengo.
type Script struct {
	name     string
	compiled *tengo.Compiled
	host     *tengo.ImmutableMap
	state    *tengo.Map
	err      error
}

// NewScript compiles src. host functions are reachable from the script as
// host.<name>(...).
func NewScript(name string, src []byte, host map[string]tengo.CallableFunc) (*Script, error) {
	full := make([]byte, 0, len(src)+len(scriptDispatch)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, scriptDispatch...)

	script := tengo.NewScript(full)
	_ = script.Add("__phase", "")
	_ = script.Add("__dt", 0)
	_ = script.Add("__host", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(scriptModules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bhv: compile %s: %w", name, err)
	}

	values := make(map[string]tengo.Object, len(host))
	for k, fn := range host {
		values[k] = &tengo.UserFunction{Name: k, Value: fn}
	}

	return &Script{
		name:     name,
		compiled: compiled,
		host:     &tengo.ImmutableMap{Value: values},
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (s *Script) Name() string { return s.name }

// Err returns the first runtime error. Once a script has failed, whether in
// start or update, it stays failed and every Update reports Failure.
func (s *Script) Err() error { return s.err }

func (s *Script) Start() {
	if s.err != nil {
		return
	}
	s.err = s.run("start", 0)
}

func (s *Script) Update(dt int) State {
	if s.err != nil {
		return Failure
	}
	if err := s.run("update", dt); err != nil {
		s.err = err
		return Failure
	}
	result := strings.TrimSpace(s.compiled.Get("__result").String())
	state, err := ParseState(result)
	if err != nil {
		s.err = fmt.Errorf("bhv: %s: %w", s.name, err)
		return Failure
	}
	return state
}

func (s *Script) run(phase string, dt int) error {
	if err := s.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := s.compiled.Set("__dt", dt); err != nil {
		return err
	}
	if err := s.compiled.Set("__host", s.host); err != nil {
		return err
	}
	if err := s.compiled.Set("__state", s.state); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("bhv: run %s %s: %w", s.name, phase, err)
	}
	return nil
}

// ToFloat converts a tengo number argument.
func ToFloat(obj tengo.Object) (float64, bool) {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value), true
	case *tengo.Float:
		return v.Value, true
	}
	return 0, false
}
