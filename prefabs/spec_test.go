package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if player.JumpSpeed != 900 || player.Acceleration != 500 || player.FootstepMS != 350 {
		t.Fatalf("unexpected player tuning %+v", player)
	}

	enemies, err := LoadEnemiesSpec()
	if err != nil {
		t.Fatalf("enemies: %v", err)
	}
	for _, kind := range []string{"patrol", "turret"} {
		if _, ok := enemies.Enemies[kind]; !ok {
			t.Fatalf("missing enemy spec %q", kind)
		}
	}
	if enemies.Enemies["patrol"].PatrolDistance != 200 {
		t.Fatalf("expected patrol distance 200, got %v", enemies.Enemies["patrol"].PatrolDistance)
	}

	pickups, err := LoadPickupsSpec()
	if err != nil {
		t.Fatalf("pickups: %v", err)
	}
	if pickups.CoinValue != 10 {
		t.Fatalf("expected coin value 10, got %d", pickups.CoinValue)
	}
	for _, kind := range []string{"speed", "jump", "shield"} {
		p, ok := pickups.PowerUps[kind]
		if !ok || p.DurationMS != 5000 {
			t.Fatalf("power-up %q missing or wrong duration: %+v", kind, p)
		}
	}

	if _, err := LoadPlatformSpec(); err != nil {
		t.Fatalf("platform: %v", err)
	}
	effects, err := LoadEffectsSpec()
	if err != nil {
		t.Fatalf("effects: %v", err)
	}
	if len(effects.Effects) == 0 {
		t.Fatalf("no effects defined")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"turret_alternate.tengo", "scripts/turret_alternate.tengo", "prefabs/scripts/turret_track.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("LoadScript(%q): %v", name, err)
			}
			if len(data) == 0 {
				t.Fatalf("script %q is empty", name)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		in      string
		want    [4]uint8
		wantErr bool
	}{
		{`"#ff8000"`, [4]uint8{255, 128, 0, 255}, false},
		{`"10203040"`, [4]uint8{16, 32, 48, 64}, false},
		{`"#fff"`, [4]uint8{}, true},
		{`"#zz0000"`, [4]uint8{}, true},
		{`[1, 2]`, [4]uint8{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got := [4]uint8{c.C.R, c.C.G, c.C.B, c.C.A}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(target, []byte("name: p"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if name, ok := w.Poll(); ok {
			if filepath.Base(name) != "player.yaml" {
				t.Fatalf("unexpected change %q", name)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no change reported for %s", target)
}
