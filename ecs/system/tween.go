package system

import (
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// TweenSystem interpolates transforms and sprite alpha. Finished tweens are
// removed, or destroy their entity when DestroyOnComplete is set.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TweenComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tw *component.Tween, t *component.Transform) {
		sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !tw.Started {
			tw.Started = true
			tw.FromX, tw.FromY, tw.FromRot = t.X, t.Y, t.Rotation
			tw.FromA = 1
			if hasSprite {
				tw.FromA = sprite.Alpha
			}
		}

		tw.Elapsed++
		progress := 1.0
		if tw.Frames > 0 {
			progress = common.Clamp(float64(tw.Elapsed)/float64(tw.Frames), 0, 1)
		}
		k := ease(tw.Ease, progress)

		t.X = tw.FromX + tw.DX*k
		t.Y = tw.FromY + tw.DY*k
		t.Rotation = tw.FromRot + tw.DRot*k
		if hasSprite {
			sprite.Alpha = common.Lerp(tw.FromA, tw.ToAlpha, k)
		}

		if progress < 1 {
			return
		}
		tw.Finished = true
		if tw.DestroyOnComplete {
			ecs.DestroyEntity(w, e)
			return
		}
		ecs.Remove(w, e, component.TweenComponent.Kind())
	})
}

func ease(kind component.Ease, t float64) float64 {
	switch kind {
	case component.EasePower1:
		return 1 - (1-t)*(1-t)
	}
	return t
}
