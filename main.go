package main

import (
	"errors"
	"os"
	"time"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dawkrish/flappy-duel/internal/config"
	"github.com/dawkrish/flappy-duel/internal/game"
	"github.com/dawkrish/flappy-duel/internal/input"
	"github.com/dawkrish/flappy-duel/internal/input/keyboard"
	"github.com/dawkrish/flappy-duel/internal/render"
	"github.com/dawkrish/flappy-duel/internal/sound"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("FLAPPY_CONFIG", "flappy.toml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	kb, err := keyboard.New(cfg.Keys)
	if err != nil {
		log.Fatal().Err(err).Msg("bad key binding")
	}

	p1, p2 := kb.Names()
	renderer, err := render.New([2]string{p1, p2})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up renderer")
	}

	// The device is optional: a missing board leaves keyboard-only control.
	var buttons input.ButtonSource
	if cfg.Device.Enabled {
		dev, err := input.Open(cfg.Device, log.With().Str("port", cfg.Device.Port).Logger())
		if err != nil {
			log.Warn().Err(err).Msg("button device unavailable, keyboard only")
		} else {
			log.Info().Str("port", cfg.Device.Port).Int("baud", cfg.Device.Baud).Msg("button device connected")
			buttons = dev
		}
	}
	src := input.NewSource(kb, buttons)
	defer func() {
		if err := src.Close(); err != nil {
			log.Warn().Err(err).Msg("closing button device")
		}
	}()

	var sfx *sound.Sound
	if cfg.Sound.Enabled {
		sfx, err = sound.New(audio.NewContext(sound.SampleRate), cfg.Sound)
		if err != nil {
			log.Warn().Err(err).Msg("sound disabled")
			sfx = nil
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world := game.NewWorld(paramsFrom(cfg), seed)
	g := NewGame(world, src, renderer, sfx)

	ebiten.SetWindowSize(cfg.Screen.WindowWidth, cfg.Screen.WindowHeight)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetFullscreen(cfg.Screen.Fullscreen)
	ebiten.SetTPS(cfg.Screen.TPS)

	log.Info().Int64("seed", seed).Msg("starting flappy duel")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game exited")
	}
}

func setupLogging(cfg config.Log) {
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	if lvl, err := zerolog.ParseLevel(cfg.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.Level).Msg("unknown log level, using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func paramsFrom(cfg *config.Config) game.Params {
	return game.Params{
		ScreenWidth:     float64(cfg.Screen.Width),
		ScreenHeight:    float64(cfg.Screen.Height),
		BirdRadius:      cfg.Bird.Radius,
		BirdGravity:     cfg.Bird.Gravity,
		BirdJumpImpulse: cfg.Bird.JumpImpulse,
		Player1X:        cfg.Bird.Player1X,
		Player2X:        cfg.Bird.Player2X,
		PipeWidth:       cfg.Pipe.Width,
		PipeGap:         cfg.Pipe.Gap,
		PipeSpeed:       cfg.Pipe.Speed,
		PipeSpacing:     cfg.Pipe.Spacing,
		PipeMargin:      cfg.Pipe.Margin,
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
