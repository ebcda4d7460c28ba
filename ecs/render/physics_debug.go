package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

const debugStrokeWidth = 1.5

var (
	debugSolidColor   = cp.FColor{R: 0.85, G: 0.6, B: 0.25, A: 1}
	debugDynamicColor = cp.FColor{R: 0.3, G: 0.85, B: 1, A: 1}
	debugContactColor = cp.FColor{R: 1, G: 0.25, B: 0.4, A: 1}
)

// DrawPhysicsDebug outlines every shape in space through the camera
// viewport: platforms in amber, moving bodies in cyan.
func DrawPhysicsDebug(space *cp.Space, screen *ebiten.Image, vp Viewport) {
	if space == nil || screen == nil {
		return
	}
	cp.DrawSpace(space, &physicsDebugDrawer{screen: screen, vp: vp})
}

// physicsDebugDrawer implements cp.Drawer. Chipmunk hands it the
// ShapeColor as fill; outlines use the same colour so the body kind reads
// at a glance.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	vp     Viewport
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, _, fill cp.FColor, _ interface{}) {
	x, y := d.vp.ToScreen(pos.X, pos.Y)
	r := float32(radius * d.vp.Zoom)
	vector.StrokeCircle(d.screen, float32(x), float32(y), r, debugStrokeWidth, debugColor(fill), false)
	d.line(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), fill)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, _, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
	d.DrawCircle(a, 0, radius, fill, fill, data)
	d.DrawCircle(b, 0, radius, fill, fill, data)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	if count > len(verts) {
		count = len(verts)
	}
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], fill)
	}
}

// DrawDot marks contact points; their size is in screen pixels.
func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, _ interface{}) {
	x, y := d.vp.ToScreen(pos.X, pos.Y)
	vector.FillCircle(d.screen, float32(x), float32(y), float32(math.Max(size, 2)/2), debugColor(fill), false)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return debugDynamicColor
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	if body := shape.Body(); body != nil && body.GetType() == cp.BODY_STATIC {
		return debugSolidColor
	}
	return debugDynamicColor
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return debugContactColor
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return debugContactColor
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) line(a, b cp.Vector, c cp.FColor) {
	x0, y0 := d.vp.ToScreen(a.X, a.Y)
	x1, y1 := d.vp.ToScreen(b.X, b.Y)
	vector.StrokeLine(d.screen, float32(x0), float32(y0), float32(x1), float32(y1), debugStrokeWidth, debugColor(c), false)
}

func debugColor(c cp.FColor) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
	}
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}
