package component

// Projectile flies horizontally at VelocityX with no gravity. Source is the
// raw id of the emitting entity, which may be gone by the time it hits.
type Projectile struct {
	VelocityX  float64
	Source     uint64
	HitTerrain bool
}

var ProjectileComponent = NewComponent[Projectile]()
