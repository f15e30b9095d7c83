package bhv

// Sequence runs its children in order. It fails or keeps running as soon as
// a child does, and succeeds once every child has succeeded.
type Sequence struct {
	nodes   []Node
	current int
}

func NewSequence(children ...Node) *Sequence {
	return &Sequence{nodes: children}
}

func (s *Sequence) children() []Node { return s.nodes }

func (s *Sequence) Start() {
	s.current = 0
	if len(s.nodes) > 0 {
		s.nodes[0].Start()
	}
}

func (s *Sequence) Update(dt int) State {
	for {
		if s.current >= len(s.nodes) {
			s.current = 0
			return Success
		}
		state := s.nodes[s.current].Update(dt)
		if state != Success {
			return state
		}
		s.current++
		if s.current < len(s.nodes) {
			s.nodes[s.current].Start()
		}
	}
}

// Selector runs its children in order until one does not fail. It fails once
// every child has failed.
type Selector struct {
	nodes   []Node
	current int
}

func NewSelector(children ...Node) *Selector {
	return &Selector{nodes: children}
}

func (s *Selector) children() []Node { return s.nodes }

func (s *Selector) Start() {
	s.current = 0
	if len(s.nodes) > 0 {
		s.nodes[0].Start()
	}
}

func (s *Selector) Update(dt int) State {
	for {
		if s.current >= len(s.nodes) {
			s.current = 0
			return Failure
		}
		state := s.nodes[s.current].Update(dt)
		if state != Failure {
			return state
		}
		s.current++
		if s.current < len(s.nodes) {
			s.nodes[s.current].Start()
		}
	}
}
