package ecs

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func collect[T any](w *World, kind component.ComponentKind[T]) []Entity {
	var res []Entity
	ForEach(w, kind, func(e Entity, _ *T) { res = append(res, e) })
	return res
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				e := CreateEntity(w)
				require.True(t, e.Valid())
				ents = append(ents, e)
			}
			require.Len(t, Entities(w), c.create)

			if c.destroyIndex < 0 {
				return
			}
			require.True(t, DestroyEntity(w, ents[c.destroyIndex]))
			assert.False(t, IsAlive(w, ents[c.destroyIndex]))
			assert.False(t, DestroyEntity(w, ents[c.destroyIndex]), "double destroy")
			assert.Len(t, Entities(w), c.create-1)
		})
	}
}

func TestEntityGenerationReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, kind, intPtr(1)))
	require.True(t, DestroyEntity(w, old))

	fresh := CreateEntity(w)
	assert.Equal(t, old.id(), fresh.id(), "slot is recycled")
	assert.NotEqual(t, old, fresh, "generation differs")
	assert.False(t, IsAlive(w, old))
	assert.True(t, IsAlive(w, fresh))

	_, ok := Get(w, fresh, kind)
	assert.False(t, ok, "components do not survive destruction")
	assert.ErrorIs(t, Add(w, old, kind, intPtr(2)), component.ErrEntityNotAlive)
}

func TestComponents(t *testing.T) {
	ints := component.NewComponent[int]().Kind()
	strs := component.NewComponent[string]().Kind()

	tests := []struct {
		name string
		run  func(t *testing.T, w *World, e Entity)
	}{
		{
			name: "add_get",
			run: func(t *testing.T, w *World, e Entity) {
				require.NoError(t, Add(w, e, ints, intPtr(10)))
				v, ok := Get(w, e, ints)
				require.True(t, ok)
				assert.Equal(t, 10, *v)
				assert.True(t, Has(w, e, ints))
				assert.False(t, Has(w, e, strs))
			},
		},
		{
			name: "add_replaces",
			run: func(t *testing.T, w *World, e Entity) {
				require.NoError(t, Add(w, e, ints, intPtr(1)))
				require.NoError(t, Add(w, e, ints, intPtr(2)))
				v, _ := Get(w, e, ints)
				assert.Equal(t, 2, *v)
				assert.Equal(t, 1, Count(w, ints))
			},
		},
		{
			name: "pointer_is_shared",
			run: func(t *testing.T, w *World, e Entity) {
				require.NoError(t, Add(w, e, strs, stringPtr("a")))
				v, _ := Get(w, e, strs)
				*v = "b"
				again, _ := Get(w, e, strs)
				assert.Equal(t, "b", *again)
			},
		},
		{
			name: "remove",
			run: func(t *testing.T, w *World, e Entity) {
				require.NoError(t, Add(w, e, ints, intPtr(3)))
				assert.True(t, Remove(w, e, ints))
				assert.False(t, Remove(w, e, ints))
				assert.False(t, Has(w, e, ints))
				assert.Equal(t, 0, Count(w, ints))
			},
		},
		{
			name: "errors",
			run: func(t *testing.T, w *World, e Entity) {
				assert.ErrorIs(t, Add(w, e, ints, nil), component.ErrNilComponent)
				assert.ErrorIs(t, Add(w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
			},
		},
		{
			name: "first",
			run: func(t *testing.T, w *World, e Entity) {
				_, ok := First(w, ints)
				assert.False(t, ok)
				require.NoError(t, Add(w, e, ints, intPtr(4)))
				got, ok := First(w, ints)
				require.True(t, ok)
				assert.Equal(t, e, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			tt.run(t, w, CreateEntity(w))
		})
	}
}

func TestRemoveKeepsOtherEntities(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		require.NoError(t, Add(w, ents[i], kind, intPtr(i)))
	}
	require.True(t, Remove(w, ents[1], kind))

	for i, e := range ents {
		v, ok := Get(w, e, kind)
		if i == 1 {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok)
		assert.Equal(t, i, *v)
	}
}

func TestForEach(t *testing.T) {
	a := component.NewComponent[int]().Kind()
	b := component.NewComponent[string]().Kind()
	c := component.NewComponent[float64]().Kind()

	w := NewWorld()
	onlyA := CreateEntity(w)
	ab := CreateEntity(w)
	abc := CreateEntity(w)
	require.NoError(t, Add(w, onlyA, a, intPtr(1)))
	require.NoError(t, Add(w, ab, a, intPtr(2)))
	require.NoError(t, Add(w, ab, b, stringPtr("ab")))
	require.NoError(t, Add(w, abc, a, intPtr(3)))
	require.NoError(t, Add(w, abc, b, stringPtr("abc")))
	f := 3.0
	require.NoError(t, Add(w, abc, c, &f))

	t.Run("one", func(t *testing.T) {
		assert.ElementsMatch(t, []Entity{onlyA, ab, abc}, collect(w, a))
	})

	t.Run("two", func(t *testing.T) {
		var res []Entity
		ForEach2(w, a, b, func(e Entity, _ *int, _ *string) { res = append(res, e) })
		assert.ElementsMatch(t, []Entity{ab, abc}, res)
	})

	t.Run("three", func(t *testing.T) {
		var res []Entity
		ForEach3(w, a, b, c, func(e Entity, _ *int, _ *string, _ *float64) { res = append(res, e) })
		assert.Equal(t, []Entity{abc}, res)
	})

	t.Run("missing_store", func(t *testing.T) {
		unused := component.NewComponent[uint8]().Kind()
		called := false
		ForEach2(w, a, unused, func(Entity, *int, *uint8) { called = true })
		assert.False(t, called)
	})

	t.Run("mutate_while_iterating", func(t *testing.T) {
		w := NewWorld()
		for i := 0; i < 3; i++ {
			require.NoError(t, Add(w, CreateEntity(w), a, intPtr(i)))
		}
		visited := 0
		ForEach(w, a, func(e Entity, _ *int) {
			visited++
			Remove(w, e, a)
		})
		assert.Equal(t, 3, visited)
		assert.Equal(t, 0, Count(w, a))
	})

	t.Run("skips_destroyed", func(t *testing.T) {
		w := NewWorld()
		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		require.NoError(t, Add(w, e1, a, intPtr(1)))
		require.NoError(t, Add(w, e2, a, intPtr(2)))
		DestroyEntity(w, e1)
		assert.Equal(t, []Entity{e2}, collect(w, a))
	})
}

func TestSingletons(t *testing.T) {
	w := NewWorld()

	_, ok := w.Singletons().Player(w)
	assert.False(t, ok, "unset")

	player := CreateEntity(w)
	camera := CreateEntity(w)
	w.Singletons().SetPlayer(player)
	w.Singletons().SetCamera(camera)

	got, ok := w.Singletons().Player(w)
	require.True(t, ok)
	assert.Equal(t, player, got)

	DestroyEntity(w, player)
	_, ok = w.Singletons().Player(w)
	assert.False(t, ok, "destroyed player reads as absent")

	// A recycled slot must not resurrect the old handle.
	CreateEntity(w)
	_, ok = w.Singletons().Player(w)
	assert.False(t, ok)

	got, ok = w.Singletons().Camera(w)
	require.True(t, ok)
	assert.Equal(t, camera, got)

	_, ok = w.Singletons().Overlay(w)
	assert.False(t, ok)
}

type recordingSystem struct {
	name  string
	log   *[]string
	delta *float64
}

func (r recordingSystem) Update(w *World) {
	*r.log = append(*r.log, r.name)
	if r.delta != nil {
		*r.delta = w.Time().Delta()
	}
}

func TestSchedulerOrderAndTime(t *testing.T) {
	w := NewWorld()
	var log []string
	var seen float64

	s := NewScheduler(
		recordingSystem{name: "first", log: &log, delta: &seen},
		nil,
		recordingSystem{name: "second", log: &log},
	)
	s.Add(recordingSystem{name: "third", log: &log})
	require.Len(t, s.Systems(), 3)

	s.Update(w, 0.25)
	assert.Equal(t, []string{"first", "second", "third"}, log)
	assert.Equal(t, 0.25, seen)

	s.Update(w, 0.5)
	assert.Equal(t, 0.5, w.Time().Delta())
	assert.Equal(t, 0.75, w.Time().Elapsed())
	assert.Equal(t, uint64(2), w.Time().Frame())

	s.Update(w, -1)
	assert.Equal(t, 0.0, w.Time().Delta(), "negative delta clamps")
	assert.Equal(t, 0.75, w.Time().Elapsed())
}
