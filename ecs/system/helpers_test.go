package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/require"
)

type fakeKeys map[Action]bool

func (k fakeKeys) Pressed(action Action) bool {
	return k[action]
}

// step runs systems once with the given frame delta.
func step(w *ecs.World, dt float64, systems ...ecs.System) {
	ecs.NewScheduler(systems...).Update(w, dt)
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: 300}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}))
	w.Singletons().SetPlayer(e)
	return e
}

func addCamera(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}))
	w.Singletons().SetCamera(e)
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}
