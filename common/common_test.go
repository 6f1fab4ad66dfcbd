package common

import (
	"testing"
	"time"
)

func TestFrames(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"one_second", time.Second, 60},
		{"dash_window", 200 * time.Millisecond, 12},
		{"footstep", 350 * time.Millisecond, 21},
		{"partial_tick_rounds_up", time.Millisecond, 1},
		{"powerup", 5 * time.Second, 300},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Frames(c.d); got != c.want {
				t.Fatalf("Frames(%v) = %d, want %d", c.d, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}
