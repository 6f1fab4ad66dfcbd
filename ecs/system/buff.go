package system

import (
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
)

// buffOrder fixes the sweep order so expiries are deterministic.
var buffOrder = []component.BuffKind{component.BuffSpeed, component.BuffJump, component.BuffShield}

// ApplyPowerUp starts a timed effect on the player. Collecting a type that is
// already active only refreshes its timer; the multiplier is not applied a
// second time, so expiry always restores the original tuning.
func ApplyPowerUp(w *ecs.World, player ecs.Entity, kind component.BuffKind, multiplier float64, frames int) {
	tuning, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	buffs, ok := ecs.Get(w, player, component.BuffsComponent.Kind())
	if !ok {
		buffs = &component.Buffs{}
		_ = ecs.Add(w, player, component.BuffsComponent.Kind(), buffs)
	}
	if buffs.Active == nil {
		buffs.Active = make(map[component.BuffKind]*component.Buff)
	}

	if active, ok := buffs.Active[kind]; ok {
		active.Remaining = frames
		return
	}

	buff := &component.Buff{Remaining: frames}
	switch kind {
	case component.BuffSpeed:
		buff.Baseline = tuning.Acceleration
		buff.BaselineMax = tuning.MaxSpeed
		tuning.Acceleration *= multiplier
		tuning.MaxSpeed *= multiplier
	case component.BuffJump:
		buff.Baseline = tuning.JumpSpeed
		tuning.JumpSpeed *= multiplier
	case component.BuffShield:
		inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind())
		if !ok {
			inv = &component.Invulnerable{}
			_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), inv)
		}
		inv.Shield = true
	default:
		return
	}
	buffs.Active[kind] = buff
}

// BuffSystem counts down active power-ups and reverts each one as it expires.
type BuffSystem struct{}

func NewBuffSystem() *BuffSystem {
	return &BuffSystem{}
}

func (s *BuffSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BuffsComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, buffs *component.Buffs, tuning *component.Player) {
		for _, kind := range buffOrder {
			buff, ok := buffs.Active[kind]
			if !ok {
				continue
			}
			buff.Remaining--
			if buff.Remaining > 0 {
				continue
			}
			revertBuff(w, e, tuning, kind, buff)
			delete(buffs.Active, kind)
		}
	})
}

func revertBuff(w *ecs.World, e ecs.Entity, tuning *component.Player, kind component.BuffKind, buff *component.Buff) {
	switch kind {
	case component.BuffSpeed:
		tuning.Acceleration = buff.Baseline
		tuning.MaxSpeed = buff.BaselineMax
	case component.BuffJump:
		tuning.JumpSpeed = buff.Baseline
	case component.BuffShield:
		inv, ok := ecs.Get(w, e, component.InvulnerableComponent.Kind())
		if !ok {
			return
		}
		inv.Shield = false
		if inv.Frames <= 0 {
			ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	}
}
