package ecs

// Singletons holds the optional handles of entities the game expects exactly
// one of. Lookups verify liveness so a destroyed entity reads as absent.
type Singletons struct {
	player  Entity
	camera  Entity
	overlay Entity
}

func (s *Singletons) SetPlayer(e Entity)  { s.player = e }
func (s *Singletons) SetCamera(e Entity)  { s.camera = e }
func (s *Singletons) SetOverlay(e Entity) { s.overlay = e }

// Player returns the player handle if one is registered and alive in w.
func (s *Singletons) Player(w *World) (Entity, bool) {
	return s.lookup(w, s.player)
}

// Camera returns the camera handle if one is registered and alive in w.
func (s *Singletons) Camera(w *World) (Entity, bool) {
	return s.lookup(w, s.camera)
}

// Overlay returns the FPS overlay handle if one is registered and alive in w.
func (s *Singletons) Overlay(w *World) (Entity, bool) {
	return s.lookup(w, s.overlay)
}

func (s *Singletons) lookup(w *World, e Entity) (Entity, bool) {
	if s == nil || !e.Valid() || !IsAlive(w, e) {
		return 0, false
	}
	return e, true
}

func (s *Singletons) forget(e Entity) {
	switch e {
	case s.player:
		s.player = 0
	case s.camera:
		s.camera = 0
	case s.overlay:
		s.overlay = 0
	}
}
