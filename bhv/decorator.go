package bhv

// Negate swaps Success and Failure.
type Negate struct {
	Child Node
}

func (n *Negate) children() []Node { return []Node{n.Child} }

func (n *Negate) Start() { n.Child.Start() }

func (n *Negate) Update(dt int) State {
	switch state := n.Child.Update(dt); state {
	case Success:
		return Failure
	case Failure:
		return Success
	default:
		return state
	}
}

// Fail turns Success into Failure.
type Fail struct {
	Child Node
}

func (f *Fail) children() []Node { return []Node{f.Child} }

func (f *Fail) Start() { f.Child.Start() }

func (f *Fail) Update(dt int) State {
	if state := f.Child.Update(dt); state != Success {
		return state
	}
	return Failure
}

// Repeat restarts its child each time it succeeds. A failure ends the
// repetition.
type Repeat struct {
	Child Node
}

func (r *Repeat) children() []Node { return []Node{r.Child} }

func (r *Repeat) Start() { r.Child.Start() }

func (r *Repeat) Update(dt int) State {
	state := r.Child.Update(dt)
	if state == Success {
		r.Child.Start()
		return Running
	}
	return state
}

// Retry restarts its child each time it fails. A success ends the retries.
type Retry struct {
	Child Node
}

func (r *Retry) children() []Node { return []Node{r.Child} }

func (r *Retry) Start() { r.Child.Start() }

func (r *Retry) Update(dt int) State {
	state := r.Child.Update(dt)
	if state == Failure {
		r.Child.Start()
		return Running
	}
	return state
}

// Loop updates its child forever.
type Loop struct {
	Child Node
}

func (l *Loop) children() []Node { return []Node{l.Child} }

func (l *Loop) Start() { l.Child.Start() }

func (l *Loop) Update(dt int) State {
	l.Child.Update(dt)
	return Running
}
