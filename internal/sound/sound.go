// Package sound plays the jump and hit effects.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/dawkrish/flappy-duel/internal/config"
)

const SampleRate = 48000

type Sound struct {
	jumpPlayer *audio.Player
	hitPlayer  *audio.Player
}

// New loads both effects. Files from the config are decoded by extension
// (.wav or .ogg); an empty path falls back to a built-in tone.
func New(ctx *audio.Context, cfg config.Sound) (*Sound, error) {
	jump, err := newPlayer(ctx, cfg.JumpFile, jumpTone, cfg.Volume)
	if err != nil {
		return nil, fmt.Errorf("jump sound: %w", err)
	}
	hit, err := newPlayer(ctx, cfg.HitFile, hitTone, cfg.Volume)
	if err != nil {
		return nil, fmt.Errorf("hit sound: %w", err)
	}
	return &Sound{jumpPlayer: jump, hitPlayer: hit}, nil
}

func newPlayer(ctx *audio.Context, path string, fallback tone, volume float64) (*audio.Player, error) {
	var (
		src []byte
		ext = ".wav"
	)
	if path == "" {
		src = fallback.wav(ctx.SampleRate())
	} else {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		src = b
		ext = strings.ToLower(filepath.Ext(path))
	}

	var stream io.Reader
	switch ext {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(src))
		if err != nil {
			return nil, err
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported sound format %q", ext)
	}

	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	p.SetVolume(volume)
	return p, nil
}

func (s *Sound) Jump() error {
	return replay(s.jumpPlayer)
}

func (s *Sound) Hit() error {
	return replay(s.hitPlayer)
}

func replay(p *audio.Player) error {
	if err := p.Rewind(); err != nil {
		return err
	}
	p.Play()
	return nil
}
