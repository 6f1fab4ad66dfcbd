package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/ecs"
	"github.com/milk9111/alienswim/ecs/component"
	"github.com/milk9111/alienswim/ecs/entity"
	"github.com/milk9111/alienswim/ecs/system"
	"github.com/milk9111/alienswim/levels"
	"github.com/milk9111/alienswim/prefabs"
	"github.com/milk9111/alienswim/settings"
)

var skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

type scene int

const (
	sceneTitle scene = iota
	scenePlay
	sceneCredits
)

type Game struct {
	scene      scene
	levels     []string
	levelIndex int
	graceMS    int
	debug      bool
	paused     bool

	store   *settings.Store
	sounds  *system.SoundBank
	overlay *overlay
	watcher *prefabs.Watcher
	screens *screens

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
}

// NewGame starts on the title screen, or straight in levelName when one is
// given.
func NewGame(levelName string, debug bool, graceMS int, store *settings.Store) *Game {
	g := &Game{
		levels:  levels.Names(),
		graceMS: graceMS,
		store:   store,
		screens: newScreens(),
		render:  system.NewRenderSystem(),
	}
	g.sounds = system.NewSoundBank(func() float64 { return g.store.Get().EffectiveVolume() })
	g.overlay = newOverlay(overlayActions{
		StepVolume:  g.stepVolume,
		ToggleMute:  g.toggleMute,
		ToggleDebug: func() { g.setDebug(!g.debug) },
		Resume:      func() { g.setPaused(false) },
	})
	g.setDebug(debug || store.Get().Debug)

	if levelName == "" {
		return g
	}
	idx := g.indexOf(levelName)
	if idx < 0 {
		log.Printf("level %s is not embedded; starting at the title", levelName)
		return g
	}
	if err := g.play(idx); err != nil {
		log.Printf("failed to load level %s: %v", levelName, err)
		g.scene = sceneTitle
	}
	return g
}

func (g *Game) indexOf(name string) int {
	name = filepath.Base(name)
	name = name[:len(name)-len(filepath.Ext(name))]
	for i, n := range g.levels {
		if n == name {
			return i
		}
	}
	return -1
}

// play discards the current world and builds level index from scratch.
func (g *Game) play(index int) error {
	if index < 0 || index >= len(g.levels) {
		return fmt.Errorf("no level at index %d", index)
	}
	name := g.levels[index]
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	specs, err := entity.LoadPrefabs()
	if err != nil {
		return err
	}
	if g.graceMS > 0 {
		player := *specs.Player
		player.SpawnGraceMS = g.graceMS
		specs.Player = &player
	}

	w := ecs.NewWorld()
	if _, err := entity.LoadLevel(w, lvl, name, specs); err != nil {
		return err
	}

	g.world = w
	g.physics = system.NewPhysicsSystem()
	g.scheduler = g.newScheduler(specs)
	g.levelIndex = index
	g.scene = scenePlay
	g.overlay.Hide()
	g.setPaused(false)
	return nil
}

func (g *Game) newScheduler(specs *entity.Prefabs) *ecs.Scheduler {
	s := ecs.NewScheduler()
	s.AddAlways(system.NewInputSystem(system.KeyboardInput{}))
	s.AddAlways(&menuToggleSystem{game: g})
	s.Add(system.NewGameStateSystem())
	s.Add(system.NewPlayerControllerSystem())
	s.Add(system.NewPlatformSystem())
	s.Add(system.NewEnemySystem(system.NewTurretScripts()))
	s.Add(g.physics)
	s.Add(system.NewEnemyContactSystem())
	s.Add(system.NewProjectileSystem())
	s.Add(system.NewHazardSystem())
	s.Add(system.NewPickupCollectSystem())
	s.Add(system.NewGoalSystem())
	s.Add(system.NewBuffSystem())
	s.Add(system.NewInvulnerableSystem())
	s.Add(system.NewTweenSystem())
	s.Add(system.NewCelebrationSystem())
	s.Add(system.NewTTLSystem())
	s.Add(system.NewPickupBobSystem())
	s.Add(system.NewParticleSystem())
	s.Add(system.NewAnimationSystem())
	s.Add(system.NewCameraSystem())
	s.Add(system.NewPresentationSystem(&gameSink{game: g}, entity.NewEffectSpawner(specs.Effects)))
	return s
}

func (g *Game) Update() error {
	switch g.scene {
	case sceneTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			if err := g.play(0); err != nil {
				log.Printf("failed to start: %v", err)
			}
		}
	case sceneCredits:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.scene = sceneTitle
		}
	case scenePlay:
		g.updatePlay()
	}
	return nil
}

func (g *Game) updatePlay() {
	if g.watcher != nil {
		if path, ok := g.watcher.Poll(); ok {
			log.Printf("prefab %s changed; reloading", filepath.Base(path))
			g.restart(g.levelIndex)
			return
		}
		if err := g.watcher.Err(); err != nil {
			log.Printf("prefab watcher: %v", err)
		}
	}

	if g.paused {
		g.handleSettingsKeys()
	}
	g.scheduler.Update(g.world)
	g.overlay.Update()

	_, sess, ok := ecs.First(g.world, component.GameSessionComponent.Kind())
	if !ok || !sess.RestartRequested {
		return
	}
	next := g.levelIndex
	if sess.Phase == component.PhaseWon {
		next++
	}
	if next >= len(g.levels) {
		g.leavePlay(sceneCredits)
		return
	}
	g.restart(next)
}

// restart rebuilds level index. A level that fails to load sends the player
// back to the title instead of retrying every frame.
func (g *Game) restart(index int) {
	if err := g.play(index); err != nil {
		log.Printf("failed to load level %s: %v; returning to the title", g.levels[index], err)
		g.leavePlay(sceneTitle)
	}
}

// leavePlay drops the current world and switches to next.
func (g *Game) leavePlay(next scene) {
	g.world = nil
	g.scheduler = nil
	g.physics = nil
	g.paused = false
	if g.overlay != nil {
		g.overlay.Hide()
	}
	g.scene = next
}

// endHint tells the player what ENTER does from the current end panel.
func (g *Game) endHint(kind component.PanelKind) string {
	if kind != component.PanelWin {
		return "Press ENTER to try again"
	}
	if g.levelIndex+1 < len(g.levels) {
		return "Press ENTER for the next level"
	}
	return "Press ENTER to see the credits"
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.scheduler != nil {
		g.scheduler.SetPaused(paused)
	}
	if paused {
		g.overlay.ShowSettings(g.store.Get(), g.store.Persistent())
		return
	}
	g.overlay.HideSettings()
	g.saveSettings()
}

func (g *Game) handleSettingsKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.stepVolume(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.stepVolume(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.toggleMute()
	}
}

func (g *Game) stepVolume(steps int) {
	g.store.StepVolume(steps)
	g.overlay.RefreshSettings(g.store.Get(), g.store.Persistent())
}

func (g *Game) toggleMute() {
	g.store.ToggleMute()
	g.overlay.RefreshSettings(g.store.Get(), g.store.Persistent())
}

func (g *Game) saveSettings() {
	if err := g.store.Save(); err != nil {
		log.Printf("%v", err)
	}
}

// setDebug turns the collider overlay on or off and, with it, prefab hot
// reload from the on-disk prefab directory.
func (g *Game) setDebug(on bool) {
	g.debug = on
	g.store.SetDebug(on)
	g.overlay.RefreshSettings(g.store.Get(), g.store.Persistent())

	if !on {
		if g.watcher != nil {
			_ = g.watcher.Close()
			g.watcher = nil
		}
		return
	}
	if g.watcher != nil {
		return
	}
	if _, err := os.Stat(prefabs.Dir); err != nil {
		return
	}
	dirs := []string{prefabs.Dir}
	if scripts := filepath.Join(prefabs.Dir, "scripts"); dirExists(scripts) {
		dirs = append(dirs, scripts)
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("prefab watcher: %v", err)
		return
	}
	g.watcher = w
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	switch g.scene {
	case sceneTitle:
		g.screens.drawTitle(screen)
	case sceneCredits:
		g.screens.drawCredits(screen)
	case scenePlay:
		g.render.Draw(g.world, screen)
		if g.debug {
			system.DrawPhysicsDebug(g.physics.Space(), g.world, screen)
			system.DrawPlayerStateDebug(g.world, screen)
		}
		g.screens.drawHUD(screen, g.world, g.levels[g.levelIndex])
		g.overlay.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases audio players and the prefab watcher.
func (g *Game) Close() {
	g.sounds.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.saveSettings()
}
