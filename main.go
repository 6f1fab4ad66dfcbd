package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/alienswim/common"
	"github.com/milk9111/alienswim/settings"
)

func main() {
	debug := flag.Bool("debug", false, "draw colliders and the player state, and hot reload prefabs")
	mute := flag.Bool("m", false, "start with sound muted")
	grace := flag.Int("grace", 0, "invulnerability after spawning, in milliseconds (overrides player.yaml)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional); skips the title")
	flag.Parse()

	store := settings.Open(settings.AppName)
	if *mute && !store.Get().Muted {
		store.ToggleMute()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2/3, common.BaseHeight*2/3)
	ebiten.SetWindowTitle("Alien can't swim")
	ebiten.SetTPS(common.TPS)

	game := NewGame(*levelName, *debug, *grace, store)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
