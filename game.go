package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/dawkrish/flappy-duel/internal/game"
	"github.com/dawkrish/flappy-duel/internal/input"
	"github.com/dawkrish/flappy-duel/internal/render"
	"github.com/dawkrish/flappy-duel/internal/sound"
)

// Controls is the input source the game polls once per tick.
type Controls interface {
	Poll() game.Intents
	Connected() bool
}

// this struct implements ebiten.Game interface
type Game struct {
	world    *game.World
	input    Controls
	renderer *render.Renderer
	sound    *sound.Sound // nil when muted

	screenWidth  int
	screenHeight int
}

var _ Controls = (*input.Source)(nil)

func NewGame(world *game.World, in Controls, r *render.Renderer, s *sound.Sound) *Game {
	return &Game{
		world:        world,
		input:        in,
		renderer:     r,
		sound:        s,
		screenWidth:  int(world.Params.ScreenWidth),
		screenHeight: int(world.Params.ScreenHeight),
	}
}

// Update runs one fixed tick: input, then simulation.
func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Quit {
		return ebiten.Termination
	}

	ev := g.world.Step(in)
	g.report(ev)
	return nil
}

func (g *Game) report(ev game.Events) {
	w := g.world
	if ev.Started {
		log.Info().Str("round", w.Round.String()).Msg("round started")
	}
	for i := range ev.Died {
		if ev.Died[i] {
			log.Debug().Str("round", w.Round.String()).Int("player", i+1).Int("tick", w.Tick).Msg("bird down")
		}
	}
	if ev.Ended {
		log.Info().
			Str("round", w.Round.String()).
			Int("score1", w.Scores[0]).
			Int("score2", w.Scores[1]).
			Str("winner", w.Winner).
			Int("ticks", w.Tick).
			Msg("round over")
	}

	if g.sound == nil {
		return
	}
	if ev.Jumped[0] || ev.Jumped[1] {
		if err := g.sound.Jump(); err != nil {
			log.Debug().Err(err).Msg("jump sound")
		}
	}
	if ev.Died[0] || ev.Died[1] {
		if err := g.sound.Hit(); err != nil {
			log.Debug().Err(err).Msg("hit sound")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.input.Connected())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}
