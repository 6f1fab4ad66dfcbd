package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeEnemy
	collisionTypeProjectile
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it once per frame and copies positions and contacts back. Velocities are in
// pixels per second.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities         map[ecs.Entity]*bodyInfo
	groundShapes     map[*cp.Shape]ecs.Entity
	projectileShapes map[*cp.Shape]ecs.Entity
	contacts         map[ecs.Entity]*groundContact
	terrainHits      map[ecs.Entity]struct{}
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	shapes      []*cp.Shape
	static      bool
}

type groundContact struct {
	grounded bool
	vx, vy   float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:            newSpace(),
		entities:         make(map[ecs.Entity]*bodyInfo),
		groundShapes:     make(map[*cp.Shape]ecs.Entity),
		projectileShapes: make(map[*cp.Shape]ecs.Entity),
		contacts:         make(map[ecs.Entity]*groundContact),
		terrainHits:      make(map[ecs.Entity]struct{}),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
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
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)
	ps.resetContacts(w)

	ps.space.Step(common.DeltaTime)

	ps.syncTransforms(w)
	ps.flushContacts(w)
	ps.flushTerrainHits(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	// Actors overlap each other; gameplay resolves those contacts from
	// bounding boxes after the step.
	ps.passThrough(collisionTypePlayer, collisionTypeEnemy)
	ps.passThrough(collisionTypePlayer, collisionTypeProjectile)
	ps.passThrough(collisionTypeEnemy, collisionTypeProjectile)
	ps.passThrough(collisionTypeEnemy, collisionTypeEnemy)
	ps.passThrough(collisionTypeProjectile, collisionTypeProjectile)

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		playerEntity, okA := sys.groundShapes[shapeA]
		other := shapeB
		if !okA {
			var okB bool
			playerEntity, okB = sys.groundShapes[shapeB]
			if !okB {
				return true
			}
			other = shapeA
		}

		n := arb.Normal()
		if !okA {
			n = n.Neg()
		}
		// Only contacts below the feet count; the sensor also brushes walls.
		if n.Y <= 0.5 {
			return true
		}
		st := sys.contacts[playerEntity]
		if st == nil {
			st = &groundContact{}
			sys.contacts[playerEntity] = st
		}
		st.grounded = true
		if body := other.Body(); body != nil {
			v := body.Velocity()
			st.vx, st.vy = v.X, v.Y
		}
		return true
	}

	projectileHandler := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeSolid)
	projectileHandler.UserData = ps
	projectileHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		if e, ok := sys.projectileShapes[shapeA]; ok {
			sys.terrainHits[e] = struct{}{}
		} else if e, ok := sys.projectileShapes[shapeB]; ok {
			sys.terrainHits[e] = struct{}{}
		}
		return false
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) passThrough(a, b cp.CollisionType) {
	handler := ps.space.NewCollisionHandler(a, b)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		return false
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil || bodyComp.Shape == nil {
				bodyComp.Body = info.body
				bodyComp.Shape = info.mainShape
			}
			continue
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		info := ps.createBodyInfo(*transform, *bodyComp, isPlayer)
		if info == nil || info.mainShape == nil {
			continue
		}
		ps.entities[e] = info
		if info.groundShape != nil {
			ps.groundShapes[info.groundShape] = e
		}
		if bodyComp.Layer == component.LayerProjectile {
			ps.projectileShapes[info.mainShape] = e
			if proj, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
				info.body.SetVelocity(proj.VelocityX, 0)
			}
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, isPlayer bool) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = common.TileSize
		height = common.TileSize
	}

	info := &bodyInfo{}

	switch bodyComp.Kind {
	case component.BodyStatic:
		bb := cp.BB{L: transform.X - width/2, B: transform.Y - height/2, R: transform.X + width/2, T: transform.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		info.static = true
		info.body = ps.space.StaticBody
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	case component.BodyKinematic:
		body := cp.NewKinematicBody()
		body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		shape := cp.NewBox(body, width, height, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddBody(body)
		ps.space.AddShape(shape)

		info.body = body
		info.mainShape = shape
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment keeps actors upright.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	if bodyComp.NoGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	switch bodyComp.Layer {
	case component.LayerPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case component.LayerEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	case component.LayerProjectile:
		shape.SetCollisionType(collisionTypeProjectile)
	default:
		shape.SetCollisionType(collisionTypeSolid)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.mainShape = shape
	info.shapes = []*cp.Shape{shape}

	if isPlayer {
		if groundShape := createGroundSensor(width, height, body); groundShape != nil {
			ps.space.AddShape(groundShape)
			info.groundShape = groundShape
			info.shapes = append(info.shapes, groundShape)
		}
	}

	return info
}

func createGroundSensor(width, height float64, body *cp.Body) *cp.Shape {
	if body == nil || width <= 0 || height <= 0 {
		return nil
	}
	groundBB := cp.BB{
		L: -width * 0.45,
		B: height / 2.0,
		R: width * 0.45,
		T: height/2.0 + 2,
	}
	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)
	return groundShape
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	if ps.space == nil || w == nil {
		return
	}
	boundsEntity, bounds, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // bottom
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1.0)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) resetContacts(w *ecs.World) {
	for e := range ps.contacts {
		delete(ps.contacts, e)
	}
	for _, e := range w.Query(component.PlayerCollisionComponent.Kind()) {
		ps.contacts[e] = &groundContact{}
	}
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	for e, st := range ps.contacts {
		if !w.IsAlive(e) {
			continue
		}
		pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind())
		if !ok {
			continue
		}
		// A frozen player has no body and keeps its last contact.
		if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		pc.Grounded = st.grounded
		pc.GroundVX = st.vx
		pc.GroundVY = st.vy
	}
}

func (ps *PhysicsSystem) flushTerrainHits(w *ecs.World) {
	for e := range ps.terrainHits {
		delete(ps.terrainHits, e)
		if proj, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			proj.HitTerrain = true
		}
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil || bodyComp.Kind == component.BodyStatic {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.groundShapes, shape)
			delete(ps.projectileShapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
		delete(ps.contacts, e)
		delete(ps.terrainHits, e)
	}
}
