package input

import (
	"github.com/dawkrish/flappy-duel/internal/game"
)

// KeySource reports the keyboard intents of the current tick.
type KeySource interface {
	Poll() game.Intents
}

// ButtonSource reports the push-button presses of the current tick.
type ButtonSource interface {
	Poll() [2]bool
	Connected() bool
	Close() error
}

// Source merges keyboard and buttons into one set of intents per tick. The
// buttons are optional.
type Source struct {
	keys    KeySource
	buttons ButtonSource
}

// NewSource combines keys with buttons; pass a nil buttons for keyboard only.
func NewSource(keys KeySource, buttons ButtonSource) *Source {
	return &Source{keys: keys, buttons: buttons}
}

func (s *Source) Poll() game.Intents {
	in := s.keys.Poll()
	if s.buttons == nil {
		return in
	}
	pressed := s.buttons.Poll()
	in.Jump[0] = in.Jump[0] || pressed[0]
	in.Jump[1] = in.Jump[1] || pressed[1]
	return in
}

// Connected reports whether the button device is usable.
func (s *Source) Connected() bool {
	return s.buttons != nil && s.buttons.Connected()
}

func (s *Source) Close() error {
	if s.buttons == nil {
		return nil
	}
	return s.buttons.Close()
}
