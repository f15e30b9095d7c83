package ecs

// ForEach calls fn for every entity in l holding a component of type A.
func ForEach[A Component](l *EntityList, fn func(e *Entity, a A)) {
	ka := KindOf[A]()
	for e := range l.Query(ka) {
		fn(e, e.comps[ka].(A))
	}
}

// ForEach2 calls fn for every entity holding components of types A and B.
func ForEach2[A, B Component](l *EntityList, fn func(e *Entity, a A, b B)) {
	ka, kb := KindOf[A](), KindOf[B]()
	for e := range l.Query(ka, kb) {
		fn(e, e.comps[ka].(A), e.comps[kb].(B))
	}
}

// ForEach3 calls fn for every entity holding components of types A, B and C.
func ForEach3[A, B, C Component](l *EntityList, fn func(e *Entity, a A, b B, c C)) {
	ka, kb, kc := KindOf[A](), KindOf[B](), KindOf[C]()
	for e := range l.Query(ka, kb, kc) {
		fn(e, e.comps[ka].(A), e.comps[kb].(B), e.comps[kc].(C))
	}
}

// ForEach4 calls fn for every entity holding components of types A, B, C
// and D.
func ForEach4[A, B, C, D Component](l *EntityList, fn func(e *Entity, a A, b B, c C, d D)) {
	ka, kb, kc, kd := KindOf[A](), KindOf[B](), KindOf[C](), KindOf[D]()
	for e := range l.Query(ka, kb, kc, kd) {
		fn(e, e.comps[ka].(A), e.comps[kb].(B), e.comps[kc].(C), e.comps[kd].(D))
	}
}
