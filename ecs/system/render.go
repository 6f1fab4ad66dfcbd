package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// RenderSystem draws every sprite as a tinted rectangle, back to front by
// layer, offset by the camera.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY := r.cameraOffset(w)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	layers := make(map[ecs.Entity]int, len(entities))
	for _, e := range entities {
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			layers[e] = s.Layer
		}
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return layers[entities[i]] < layers[entities[j]]
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || s.Hidden || s.Alpha <= 0 {
			continue
		}

		width, height := s.Width, s.Height
		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			width, height = animatedSize(anim, width, height)
		}
		drawRect(screen, t.X-camX, t.Y-camY, width, height, t.Rotation, s.Color, s.Alpha)

		// Actors get an eye so facing reads without art.
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) || ecs.Has(w, e, component.EnemyComponent.Kind()) {
			eyeX := width / 4
			if s.FacingLeft {
				eyeX = -eyeX
			}
			drawRect(screen, t.X-camX+eyeX, t.Y-camY-height/5, width/6, height/6, t.Rotation, color.RGBA{R: 20, G: 20, B: 30, A: 255}, s.Alpha)
		}
	}
}

func (r *RenderSystem) cameraOffset(w *ecs.World) (float64, float64) {
	if !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok {
		return 0, 0
	}
	return cam.X + cam.ShakeX, cam.Y + cam.ShakeY
}

// animatedSize squashes the rectangle on odd frames of the walk cycle and
// stretches it mid-jump.
func animatedSize(anim *component.Animation, width, height float64) (float64, float64) {
	switch anim.Current {
	case "walk":
		if anim.Frame%2 == 1 {
			return width * 1.05, height * 0.94
		}
	case "jump":
		return width * 0.92, height * 1.08
	}
	return width, height
}

// drawRect draws a rectangle centered on (cx, cy) in screen space.
func drawRect(screen *ebiten.Image, cx, cy, width, height, rotation float64, c color.RGBA, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(pixel(), op)
}
