package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"go.uber.org/zap"
)

const (
	collisionTypeDynamic cp.CollisionType = iota + 1
	collisionTypeSolid
)

const (
	defaultBodySize    = 32.0
	defaultMaxStep     = 1.0 / 60
	defaultMaxSubsteps = 8
)

// PhysicsConfig sets up the Chipmunk space. Gravity is in metres per second
// squared and is converted with PixelsPerMeter.
//
// A frame is integrated in steps of at most MaxStep seconds. Time beyond
// MaxSubsteps steps is dropped, so a stalled frame slows the simulation
// down instead of letting bodies tunnel through platforms.
type PhysicsConfig struct {
	PixelsPerMeter float64
	Gravity        float64
	Iterations     int
	MaxStep        float64
	MaxSubsteps    int
}

func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		PixelsPerMeter: common.PixelsPerMeter,
		Gravity:        common.StandardGravity,
		Iterations:     10,
		MaxStep:        defaultMaxStep,
		MaxSubsteps:    defaultMaxSubsteps,
	}
}

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it by the frame delta and writes positions back into transforms.
//
// A transform moved by another system since the last step teleports the body
// to the new position while keeping its velocity.
type PhysicsSystem struct {
	space       *cp.Space
	logger      *zap.Logger
	maxStep     float64
	maxSubsteps int

	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body         *cp.Body
	shape        *cp.Shape
	static       bool
	gravityScale float64
	lastX        float64
	lastY        float64
}

func NewPhysicsSystem(cfg PhysicsConfig, logger *zap.Logger) *PhysicsSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PixelsPerMeter <= 0 {
		cfg.PixelsPerMeter = common.PixelsPerMeter
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = 10
	}
	if cfg.MaxStep <= 0 {
		cfg.MaxStep = defaultMaxStep
	}
	if cfg.MaxSubsteps <= 0 {
		cfg.MaxSubsteps = defaultMaxSubsteps
	}

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity * cfg.PixelsPerMeter})

	return &PhysicsSystem{
		space:       space,
		logger:      logger.Named("physics"),
		maxStep:     cfg.MaxStep,
		maxSubsteps: cfg.MaxSubsteps,
		entities:    make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.pushTransforms(w)

	ps.step(w.Time().Delta())

	ps.syncTransforms(w)
}

// step integrates dt seconds in slices no longer than maxStep.
func (ps *PhysicsSystem) step(dt float64) int {
	steps := 0
	for dt > 1e-9 && steps < ps.maxSubsteps {
		h := min(dt, ps.maxStep)
		ps.space.Step(h)
		dt -= h
		steps++
	}
	if dt > 1e-9 {
		ps.logger.Debug("frame too long, dropping physics time", zap.Float64("dropped", dt))
	}
	return steps
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(*transform, *bodyComp)
			ps.entities[e] = info
			ps.logger.Debug("body created",
				zap.Stringer("entity", e),
				zap.Bool("static", info.static),
				zap.Float64("x", transform.X),
				zap.Float64("y", transform.Y),
			)
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape

		info.gravityScale = 1
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			info.gravityScale = gs.Scale
		}
	})
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = defaultBodySize
		height = defaultBodySize
	}

	info := &bodyInfo{static: bodyComp.Static, gravityScale: 1, lastX: transform.X, lastY: transform.Y}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shape = shape
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.LockRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(info.gravityScale), damping, dt)
	})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeDynamic)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shape = shape
	return info
}

// pushTransforms teleports dynamic bodies whose transform was written since
// the last step.
func (ps *PhysicsSystem) pushTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if transform.X == info.lastX && transform.Y == info.lastY {
			continue
		}
		info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
		info.lastX = pos.X
		info.lastY = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
		ps.logger.Debug("body removed", zap.Stringer("entity", e))
	}
}
