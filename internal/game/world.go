package game

import "github.com/google/uuid"

type Mode int

const (
	ModeTitle Mode = iota // not started
	ModeGame
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeGame:
		return "game"
	case ModeOver:
		return "over"
	}
	return "unknown"
}

const (
	WinnerPlayer1 = "Player 1"
	WinnerPlayer2 = "Player 2"
	WinnerTie     = "Tie"
)

// Intents are the edge-triggered inputs of one tick.
type Intents struct {
	Jump  [2]bool
	Start bool
	Quit  bool
}

// Any reports whether the tick carries something that starts a round.
func (in Intents) Any() bool {
	return in.Start || in.Jump[0] || in.Jump[1]
}

// Events describe what happened during one Step.
type Events struct {
	Started bool
	Ended   bool
	Jumped  [2]bool
	Died    [2]bool
	Scored  [2]bool
}

// World is the whole simulation: both birds, the active pipes, the scores
// and the mode. It has a single owner and is not safe for concurrent use.
type World struct {
	Params Params
	Mode   Mode
	Birds  [2]*Bird
	Pipes  []*Pipe
	Scores [2]int
	Winner string
	Round  uuid.UUID
	Tick   int

	gen *PipeGenerator
}

func NewWorld(p Params, seed int64) *World {
	w := &World{
		Params: p,
		gen:    NewPipeGenerator(p, seed),
	}
	w.Reset()
	return w
}

// Reset respawns both birds, clears the pipes and zeroes the scores.
func (w *World) Reset() {
	w.Birds = [2]*Bird{
		NewBird(w.Params.Player1X, w.Params),
		NewBird(w.Params.Player2X, w.Params),
	}
	w.Pipes = nil
	w.Scores = [2]int{}
	w.Winner = ""
	w.Mode = ModeTitle
	w.Tick = 0
}

// Step runs one tick: intents first, then the simulation if a round is on.
func (w *World) Step(in Intents) Events {
	var ev Events

	switch w.Mode {
	case ModeTitle:
		if in.Any() {
			w.start(&ev)
		}
	case ModeOver:
		if in.Any() {
			w.Reset()
			w.start(&ev)
		}
	case ModeGame:
		for i, b := range w.Birds {
			if in.Jump[i] {
				ev.Jumped[i] = b.Jump()
			}
		}
	}

	if w.Mode == ModeGame {
		w.update(&ev)
	}
	return ev
}

func (w *World) start(ev *Events) {
	w.Mode = ModeGame
	w.Round = uuid.New()
	ev.Started = true
}

func (w *World) update(ev *Events) {
	w.Tick++
	alive := [2]bool{w.Birds[0].Alive, w.Birds[1].Alive}

	for _, b := range w.Birds {
		b.Update(w.Params.ScreenHeight)
	}

	w.Pipes = w.gen.Advance(w.Pipes)
	w.Pipes = w.gen.Spawn(w.Pipes)

	w.collide()

	for i, b := range w.Birds {
		ev.Died[i] = alive[i] && !b.Alive
	}

	if !w.Birds[0].Alive && !w.Birds[1].Alive {
		w.Mode = ModeOver
		w.Winner = DecideWinner(w.Scores[0], w.Scores[1])
		ev.Ended = true
		return
	}

	for i := range w.Birds {
		ev.Scored[i] = w.score(i)
	}
}

// collide kills every living bird whose bounding box overlaps a pipe.
func (w *World) collide() {
	for _, p := range w.Pipes {
		top, bottom := p.Rects()
		for _, b := range w.Birds {
			if !b.Alive {
				continue
			}
			r := b.Rect()
			if r.Overlaps(top) || r.Overlaps(bottom) {
				b.Alive = false
			}
		}
	}
}

// score credits player i once for every pipe its living bird has passed.
func (w *World) score(i int) bool {
	b := w.Birds[i]
	if !b.Alive {
		return false
	}
	scored := false
	for _, p := range w.Pipes {
		if !p.Passed[i] && b.X > p.Right() {
			p.Passed[i] = true
			w.Scores[i]++
			scored = true
		}
	}
	return scored
}

// DecideWinner compares scores strictly; equal scores are a tie.
func DecideWinner(score1, score2 int) string {
	switch {
	case score1 > score2:
		return WinnerPlayer1
	case score2 > score1:
		return WinnerPlayer2
	}
	return WinnerTie
}
