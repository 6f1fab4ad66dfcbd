package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use. Ebiten allows only one per process.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(SampleRate)
		}
	})
	return audioContext
}

// LoadAudioPlayer builds a player for one of the generated sound effects.
func LoadAudioPlayer(key string) (*audio.Player, error) {
	b, err := SoundWAV(key)
	if err != nil {
		return nil, err
	}
	ctx := AudioContext()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", key, err)
	}
	return ctx.NewPlayer(stream)
}
