package ecs

import "github.com/milk9111/trailblazer/ecs/component"

// ForEach calls fn for every live entity with a component of kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	store := w.store(kind.ID(), false)
	if store == nil || fn == nil {
		return
	}
	for _, id := range store.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		v, ok := store.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 calls fn for every live entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range smallest(sa, sb).ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// ForEach3 calls fn for every live entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, id := range smallest(sa, sb, sc).ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the lowest-id live entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	store := w.store(kind.ID(), false)
	if store == nil {
		return 0, false
	}
	var (
		best  Entity
		found bool
	)
	for _, id := range store.denseIDs {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		if !found || e.id() < best.id() {
			best, found = e, true
		}
	}
	return best, found
}

// smallest picks the set to drive an intersection.
func smallest(sets ...*SparseSet) *SparseSet {
	best := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < best.Len() {
			best = s
		}
	}
	return best
}
