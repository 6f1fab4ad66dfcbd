package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

// DrawPhysicsDebug outlines every collider in the space plus hazard and goal
// regions, which have no physics shapes.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}

	camX, camY := debugCameraOffset(w)
	drawer := &physicsDebugDrawer{screen: screen, camX: camX, camY: camY}
	cp.DrawSpace(space, drawer)

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform) {
		strokeBox(screen, centeredBox(t.X, t.Y, h.Width, h.Height), camX, camY, color.RGBA{R: 60, G: 140, B: 255, A: 220})
	})
	ecs.ForEach2(w, component.GoalComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, g *component.Goal, t *component.Transform) {
		strokeBox(screen, centeredBox(t.X, t.Y, g.Width, g.Height), camX, camY, color.RGBA{R: 255, G: 220, B: 40, A: 220})
	})
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	stateComp, ok := ecs.Get(w, player, component.PlayerStateMachineComponent.Kind())
	if !ok {
		return
	}
	stateName := "none"
	if stateComp.State != nil {
		stateName = stateComp.State.Name()
	}
	grounded := false
	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		grounded = pc.Grounded
	}
	phase := "playing"
	if sess := session(w); sess != nil {
		phase = sess.Phase.String()
	}
	dash := ""
	if status, ok := ecs.Get(w, player, component.PlayerStatusComponent.Kind()); ok {
		dash = fmt.Sprintf("Dashing: %v CanDash: %v Cooldown: %d", status.Dashing, status.CanDash, status.DashCooldown)
	}
	text := fmt.Sprintf("Player State: %s\nGrounded: %v\nSession: %s\nInvulnerable: %v\n%s\nEntities: %d  TPS: %.0f",
		stateName, grounded, phase, isInvulnerable(w, player), dash, len(w.Entities()), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 40)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

// ShapeColor separates sensors from solid shapes.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape != nil && shape.Sensor() {
		return cp.FColor{R: 1, G: 0.8, B: 0.1, A: 0.6}
	}
	return cp.FColor{R: 0.1, G: 0.6, B: 0.1, A: 0.5}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen,
		float32(a.X-d.camX), float32(a.Y-d.camY),
		float32(b.X-d.camX), float32(b.Y-d.camY),
		1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func strokeBox(screen *ebiten.Image, b aabb, camX, camY float64, c color.Color) {
	vector.StrokeRect(screen, float32(b.minX-camX), float32(b.minY-camY), float32(b.maxX-b.minX), float32(b.maxY-b.minY), 1.0, c, false)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func debugCameraOffset(w *ecs.World) (float64, float64) {
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	return cam.X + cam.ShakeX, cam.Y + cam.ShakeY
}
