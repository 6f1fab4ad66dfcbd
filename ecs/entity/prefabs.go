package entity

import (
	"fmt"

	"github.com/milk9111/alienswim/prefabs"
)

// Prefabs bundles every tuning spec a level needs so a reload reads the
// files once.
type Prefabs struct {
	Player   *prefabs.PlayerSpec
	Enemies  *prefabs.EnemiesSpec
	Platform *prefabs.PlatformSpec
	Pickups  *prefabs.PickupsSpec
	Effects  *prefabs.EffectsSpec
}

func LoadPrefabs() (*Prefabs, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: player spec: %w", err)
	}
	enemies, err := prefabs.LoadEnemiesSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: enemies spec: %w", err)
	}
	platform, err := prefabs.LoadPlatformSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: platform spec: %w", err)
	}
	pickups, err := prefabs.LoadPickupsSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: pickups spec: %w", err)
	}
	effects, err := prefabs.LoadEffectsSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: effects spec: %w", err)
	}

	return &Prefabs{
		Player:   player,
		Enemies:  enemies,
		Platform: platform,
		Pickups:  pickups,
		Effects:  effects,
	}, nil
}
