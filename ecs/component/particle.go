package component

// Particle is a short lived cosmetic dot. Its lifetime is owned by TTL.
type Particle struct {
	VX      float64
	VY      float64
	Gravity float64
	Life    int
	MaxLife int
}

var ParticleComponent = NewComponent[Particle]()
