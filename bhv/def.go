package bhv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Def describes a tree in level data. Exactly one field is set. A bare JSON
// string is shorthand for {"script": name}:
//
//	{"sequence": ["walk.tengo", {"wait": 600}, "turn.tengo"]}
type Def struct {
	Script   string `json:"script,omitempty"`
	Wait     int    `json:"wait,omitempty"`
	Nop      bool   `json:"nop,omitempty"`
	Sequence []Def  `json:"sequence,omitempty"`
	Selector []Def  `json:"selector,omitempty"`
	Negate   *Def   `json:"negate,omitempty"`
	Fail     *Def   `json:"fail,omitempty"`
	Repeat   *Def   `json:"repeat,omitempty"`
	Retry    *Def   `json:"retry,omitempty"`
	Loop     *Def   `json:"loop,omitempty"`
}

func (d *Def) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*d = Def{Script: name}
		return d.Validate()
	}
	type plain Def
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*d = Def(p)
	return d.Validate()
}

// Validate checks that exactly one node kind is set at every level.
func (d Def) Validate() error {
	set := 0
	for _, ok := range []bool{
		d.Script != "", d.Wait > 0, d.Nop,
		d.Sequence != nil, d.Selector != nil,
		d.Negate != nil, d.Fail != nil, d.Repeat != nil, d.Retry != nil, d.Loop != nil,
	} {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return errors.New("bhv: empty node")
	case set > 1:
		return fmt.Errorf("bhv: node %v sets more than one kind", d)
	}
	for _, c := range d.kids() {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (d Def) kids() []Def {
	switch {
	case d.Sequence != nil:
		return d.Sequence
	case d.Selector != nil:
		return d.Selector
	}
	for _, c := range []*Def{d.Negate, d.Fail, d.Repeat, d.Retry, d.Loop} {
		if c != nil {
			return []Def{*c}
		}
	}
	return nil
}

func (d Def) String() string {
	switch {
	case d.Script != "":
		return d.Script
	case d.Wait > 0:
		return fmt.Sprintf("wait(%d)", d.Wait)
	case d.Nop:
		return "nop"
	}
	var name string
	switch {
	case d.Sequence != nil:
		name = "sequence"
	case d.Selector != nil:
		name = "selector"
	case d.Negate != nil:
		name = "negate"
	case d.Fail != nil:
		name = "fail"
	case d.Repeat != nil:
		name = "repeat"
	case d.Retry != nil:
		name = "retry"
	case d.Loop != nil:
		name = "loop"
	default:
		return "empty"
	}
	parts := make([]string, 0, len(d.kids()))
	for _, c := range d.kids() {
		parts = append(parts, c.String())
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

// Build turns d into a tree. script builds the leaf for a named script.
func Build(d Def, script func(name string) (Node, error)) (Node, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return build(d, script)
}

func build(d Def, script func(name string) (Node, error)) (Node, error) {
	switch {
	case d.Script != "":
		return script(d.Script)
	case d.Wait > 0:
		return &Wait{Duration: d.Wait}, nil
	case d.Nop:
		return Nop{}, nil
	}

	kids := d.kids()
	nodes := make([]Node, 0, len(kids))
	for _, c := range kids {
		n, err := build(c, script)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	switch {
	case d.Sequence != nil:
		return NewSequence(nodes...), nil
	case d.Selector != nil:
		return NewSelector(nodes...), nil
	case d.Negate != nil:
		return &Negate{Child: nodes[0]}, nil
	case d.Fail != nil:
		return &Fail{Child: nodes[0]}, nil
	case d.Repeat != nil:
		return &Repeat{Child: nodes[0]}, nil
	case d.Retry != nil:
		return &Retry{Child: nodes[0]}, nil
	default:
		return &Loop{Child: nodes[0]}, nil
	}
}
