package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/alienswim/assets"
)

// SoundBank plays generated sound effects by key. Players are built on first
// use and rewound on replay; a sound already playing is not restarted.
type SoundBank struct {
	load    func(key string) (*audio.Player, error)
	players map[string]*audio.Player
	failed  map[string]bool
	// master scales every request; nil means full volume.
	master func() float64
}

func NewSoundBank(master func() float64) *SoundBank {
	return &SoundBank{
		load:    assets.LoadAudioPlayer,
		players: make(map[string]*audio.Player),
		failed:  make(map[string]bool),
		master:  master,
	}
}

func (b *SoundBank) Play(key string, volume float64) {
	if b == nil || b.failed[key] {
		return
	}
	gain := volume
	if b.master != nil {
		gain *= b.master()
	}
	if gain <= 0 {
		return
	}

	player, ok := b.players[key]
	if !ok {
		p, err := b.load(key)
		if err != nil {
			b.failed[key] = true
			log.Printf("sound %s: %v", key, err)
			return
		}
		b.players[key] = p
		player = p
	}
	if player == nil || player.IsPlaying() {
		return
	}

	player.SetVolume(gain)
	if err := player.Rewind(); err != nil {
		log.Printf("sound %s: rewind: %v", key, err)
		return
	}
	player.Play()
}

// Close releases every player.
func (b *SoundBank) Close() {
	if b == nil {
		return
	}
	for key, p := range b.players {
		if p != nil {
			_ = p.Close()
		}
		delete(b.players, key)
	}
}
