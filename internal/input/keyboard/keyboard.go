// Package keyboard maps ebiten key presses to game intents.
package keyboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dawkrish/flappy-duel/internal/config"
	"github.com/dawkrish/flappy-duel/internal/game"
)

type Keyboard struct {
	player1 ebiten.Key
	player2 ebiten.Key
	start   ebiten.Key
	quit    ebiten.Key
}

// New resolves the configured key names ("W", "ArrowUp", "Space", ...).
func New(cfg config.Keys) (*Keyboard, error) {
	var k Keyboard
	for _, b := range []struct {
		name string
		dst  *ebiten.Key
	}{
		{cfg.Player1, &k.player1},
		{cfg.Player2, &k.player2},
		{cfg.Start, &k.start},
		{cfg.Quit, &k.quit},
	} {
		if err := b.dst.UnmarshalText([]byte(b.name)); err != nil {
			return nil, fmt.Errorf("key %q: %w", b.name, err)
		}
	}
	return &k, nil
}

// Poll reports keys pressed this tick. Holding a key does not repeat.
func (k *Keyboard) Poll() game.Intents {
	return game.Intents{
		Jump: [2]bool{
			inpututil.IsKeyJustPressed(k.player1),
			inpututil.IsKeyJustPressed(k.player2),
		},
		Start: inpututil.IsKeyJustPressed(k.start),
		Quit:  inpututil.IsKeyJustPressed(k.quit),
	}
}

// Names returns the key labels shown on the title screen.
func (k *Keyboard) Names() (player1, player2 string) {
	return k.player1.String(), k.player2.String()
}
