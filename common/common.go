package common

import "time"

const (
	// BaseWidth and BaseHeight are the logical screen size the game lays out to.
	BaseWidth  = 1440
	BaseHeight = 900

	TPS = 60

	// Gravity is in pixels per second squared.
	Gravity = 1500.0

	// Scale is the factor applied to the 18px source tiles.
	Scale    = 2.0
	TileSize = 36
)

// Frames converts a duration to a whole number of simulation ticks, rounding up
// so that a non-zero duration always lasts at least one frame.
func Frames(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int64(d) * TPS
	frames := n / int64(time.Second)
	if n%int64(time.Second) != 0 {
		frames++
	}
	return int(frames)
}

// FramesMS is Frames for a millisecond count, the unit prefab files use.
func FramesMS(ms int) int {
	return Frames(time.Duration(ms) * time.Millisecond)
}

// Seconds returns the length of n simulation ticks in seconds.
func Seconds(n int) float64 {
	return float64(n) / TPS
}

// DeltaTime is the fixed simulation step in seconds.
const DeltaTime = 1.0 / TPS

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
