package render

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Viewport converts world coordinates to screen pixels. The camera transform
// marks the world point drawn at the screen center; a rotated camera turns
// the world the opposite way around that point.
type Viewport struct {
	CamX, CamY float64
	Rotation   float64
	Zoom       float64
	Width      float64
	Height     float64
}

// CameraViewport reads the camera singleton. Without a camera the world
// origin sits at the screen center.
func CameraViewport(w *ecs.World, width, height float64) Viewport {
	vp := Viewport{Zoom: 1, Width: width, Height: height}
	cam, ok := w.Singletons().Camera(w)
	if !ok {
		return vp
	}
	if t, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
		vp.CamX = t.X
		vp.CamY = t.Y
		vp.Rotation = t.Rotation
	}
	if c, ok := ecs.Get(w, cam, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		vp.Zoom = c.Zoom
	}
	return vp
}

// ToScreen maps a world point to screen pixels.
func (vp Viewport) ToScreen(x, y float64) (float64, float64) {
	dx, dy := x-vp.CamX, y-vp.CamY
	if vp.Rotation != 0 {
		sin, cos := math.Sincos(-vp.Rotation)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}
	return dx*vp.Zoom + vp.Width/2, dy*vp.Zoom + vp.Height/2
}

// SpriteRenderer draws every world-space sprite relative to the camera.
type SpriteRenderer struct{}

func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{}
}

func (r *SpriteRenderer) Draw(w *ecs.World, screen *ebiten.Image, vp Viewport) {
	if w == nil || screen == nil {
		return
	}

	type drawable struct {
		e ecs.Entity
		t *component.Transform
		s *component.Sprite
	}
	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			return
		}
		items = append(items, drawable{e: e, t: t, s: s})
	})
	sort.Slice(items, func(i, j int) bool { return uint64(items[i].e) < uint64(items[j].e) })

	for _, it := range items {
		img := GetImage(it.s.Sheet)
		if img == nil {
			continue
		}
		if it.s.UseSource {
			sub, ok := img.SubImage(it.s.Source).(*ebiten.Image)
			if !ok {
				continue
			}
			img = sub
		}

		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
		op.GeoM.Translate(-it.s.OriginX, -it.s.OriginY)

		sx := it.t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if it.s.FacingLeft {
			sx = -sx
		}
		sy := it.t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(it.t.Rotation - vp.Rotation)
		op.GeoM.Scale(vp.Zoom, vp.Zoom)
		x, y := vp.ToScreen(it.t.X, it.t.Y)
		op.GeoM.Translate(x, y)

		screen.DrawImage(img, op)
	}
}
