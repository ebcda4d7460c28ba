package ecs

import "github.com/milk9111/platformer/ecs/component"

// snapshot copies the id list so callbacks may add or remove components
// while iterating.
func snapshot(s store) []entityID {
	ids := s.ids()
	out := make([]entityID, len(ids))
	copy(out, ids)
	return out
}

// smallest returns the store with the fewest entries.
func smallest(stores ...store) store {
	var best store
	for _, s := range stores {
		if best == nil || s.len() < best.len() {
			best = s
		}
	}
	return best
}

// ForEach calls fn for every live entity carrying a.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil || fn == nil {
		return
	}
	for _, id := range snapshot(sa) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, va)
	}
}

// ForEach2 calls fn for every live entity carrying both a and b.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range snapshot(smallest(sa, sb)) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.get(id)
		vb, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, va, vb)
	}
}

// ForEach3 calls fn for every live entity carrying a, b and c.
func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, a, false)
	sb := storeFor(w, b, false)
	sc := storeFor(w, c, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, id := range snapshot(smallest(sa, sb, sc)) {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		va, okA := sa.get(id)
		vb, okB := sb.get(id)
		vc, okC := sc.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, va, vb, vc)
	}
}
