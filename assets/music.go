package assets

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Music is a looping background track. A nil *Music is silent.
type Music struct {
	player *audio.Player
}

// LoadMusic decodes an embedded wav file into a looping player.
func LoadMusic(path string) (*Music, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load music %s: %w", path, err)
	}
	ctx := sharedAudioContext()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: music player %s: %w", path, err)
	}
	return &Music{player: player}, nil
}

func (m *Music) Play() {
	if m == nil || m.player.IsPlaying() {
		return
	}
	m.player.Play()
}

func (m *Music) Pause() {
	if m == nil {
		return
	}
	m.player.Pause()
}

// SetEnabled plays or pauses the track.
func (m *Music) SetEnabled(on bool) {
	if on {
		m.Play()
	} else {
		m.Pause()
	}
}

// SetVolume sets the volume in [0, 1].
func (m *Music) SetVolume(v float64) {
	if m == nil {
		return
	}
	m.player.SetVolume(v)
}
