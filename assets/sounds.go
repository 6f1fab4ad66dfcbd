package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// The game ships no recorded audio; each effect is synthesized from a short
// recipe into a 16-bit stereo WAV the first time it is requested.

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// segment sweeps from freqFrom to freqTo over dur seconds with a linear
// attack/decay envelope.
type segment struct {
	wave     waveform
	freqFrom float64
	freqTo   float64
	dur      float64
	gain     float64
}

type recipe struct {
	segments []segment
	seed     uint64
}

var recipes = map[string]recipe{
	"jump_sound":         {segments: []segment{{waveSquare, 320, 720, 0.14, 0.35}}},
	"land_sound":         {segments: []segment{{waveNoise, 0, 0, 0.09, 0.5}, {waveSine, 90, 60, 0.06, 0.4}}, seed: 2},
	"dash_sound":         {segments: []segment{{waveNoise, 0, 0, 0.18, 0.45}}, seed: 3},
	"coin_collect_sound": {segments: []segment{{waveSquare, 988, 988, 0.06, 0.3}, {waveSquare, 1319, 1319, 0.12, 0.3}}},
	"drown_sound":        {segments: []segment{{waveSine, 520, 180, 0.25, 0.5}, {waveSine, 420, 140, 0.25, 0.45}, {waveSine, 300, 90, 0.35, 0.4}}},
	"enemy_hit_sound":    {segments: []segment{{waveSquare, 220, 180, 0.08, 0.4}}},
	"enemy_die_sound":    {segments: []segment{{waveSquare, 420, 90, 0.3, 0.4}}},
	"powerup_collect":    {segments: []segment{{waveSine, 523, 523, 0.08, 0.4}, {waveSine, 659, 659, 0.08, 0.4}, {waveSine, 784, 784, 0.08, 0.4}, {waveSine, 1047, 1047, 0.16, 0.4}}},
}

// Keys lists every sound key SoundWAV can produce.
func Keys() []string {
	keys := make([]string, 0, len(recipes)+5)
	for k := range recipes {
		keys = append(keys, k)
	}
	for i := 0; i < 5; i++ {
		keys = append(keys, "footstep_grass_"+strconv.Itoa(i))
	}
	return keys
}

func lookup(key string) (recipe, bool) {
	if r, ok := recipes[key]; ok {
		return r, true
	}
	if rest, ok := strings.CutPrefix(key, "footstep_grass_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 || n > 4 {
			return recipe{}, false
		}
		dur := 0.04 + 0.005*float64(n)
		return recipe{segments: []segment{{waveNoise, 0, 0, dur, 0.35}}, seed: uint64(10 + n)}, true
	}
	return recipe{}, false
}

// SoundWAV returns the WAV encoding of the named effect.
func SoundWAV(key string) ([]byte, error) {
	r, ok := lookup(key)
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", key)
	}
	return encodeWAV(synthesize(r)), nil
}

func synthesize(r recipe) []int16 {
	rng := rand.New(rand.NewPCG(r.seed, r.seed^0x9e3779b97f4a7c15))
	var out []int16
	for _, seg := range r.segments {
		n := int(seg.dur * SampleRate)
		phase := 0.0
		for i := 0; i < n; i++ {
			t := float64(i) / float64(n)
			freq := seg.freqFrom + (seg.freqTo-seg.freqFrom)*t
			phase += 2 * math.Pi * freq / SampleRate

			var v float64
			switch seg.wave {
			case waveSine:
				v = math.Sin(phase)
			case waveSquare:
				if math.Sin(phase) >= 0 {
					v = 1
				} else {
					v = -1
				}
			case waveNoise:
				v = rng.Float64()*2 - 1
			}

			env := 1 - t
			if t < 0.05 {
				env = t / 0.05
			}
			out = append(out, int16(v*env*seg.gain*math.MaxInt16))
		}
	}
	return out
}

// encodeWAV writes mono samples as a 16-bit stereo PCM WAV.
func encodeWAV(samples []int16) []byte {
	const channels = 2
	dataLen := len(samples) * channels * 2

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate*channels*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for _, s := range samples {
		_ = binary.Write(&buf, binary.LittleEndian, s)
		_ = binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}
