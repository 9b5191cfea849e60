package input

import "github.com/dawkrish/flappy-duel/internal/config"

// EdgeDetector turns button state reports into press events.
//
// In edge mode a press fires once when a button goes from released to held.
// In level mode every report of a held button fires, which is how the first
// hardware build behaved (its previous state was lost between reads).
type EdgeDetector struct {
	level bool
	prev  [2]int
}

func NewEdgeDetector(mode string) *EdgeDetector {
	return &EdgeDetector{level: mode == config.ButtonModeLevel}
}

// Tick consumes the readings received since the previous tick, oldest first.
func (d *EdgeDetector) Tick(readings []Reading) [2]bool {
	var pressed [2]bool
	for _, r := range readings {
		i := r.Button - 1
		if i < 0 || i > 1 {
			continue
		}
		if r.Pressed() && (d.level || d.prev[i] != 1) {
			pressed[i] = true
		}
		d.prev[i] = r.Value
	}
	return pressed
}
