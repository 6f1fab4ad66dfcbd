package component

import "testing"

func TestEnemyTakeDamage(t *testing.T) {
	cases := []struct {
		name       string
		health     int
		hits       int
		wantDeaths int
	}{
		{"one_health_one_hit", 1, 1, 1},
		{"one_health_extra_hits", 1, 4, 1},
		{"three_health_exact", 3, 3, 1},
		{"three_health_short", 3, 2, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := &Enemy{Kind: EnemyPatrol, Health: c.health}
			deaths := 0
			for i := 0; i < c.hits; i++ {
				if e.TakeDamage(1) {
					deaths++
				}
			}
			if deaths != c.wantDeaths {
				t.Fatalf("expected %d death transitions, got %d", c.wantDeaths, deaths)
			}
			if e.Dead != (c.wantDeaths == 1) {
				t.Fatalf("Dead = %v after %d hits on %d health", e.Dead, c.hits, c.health)
			}
			if e.Health < 0 {
				t.Fatalf("health went negative: %d", e.Health)
			}
		})
	}
}

func TestEnemyTakeDamageIgnoresNonPositive(t *testing.T) {
	e := &Enemy{Health: 1}
	if e.TakeDamage(0) || e.TakeDamage(-1) {
		t.Fatalf("non-positive damage must not kill")
	}
	if e.Health != 1 {
		t.Fatalf("health changed to %d", e.Health)
	}
}
