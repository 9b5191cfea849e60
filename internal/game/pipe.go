package game

import (
	"image"
	"math"
	"math/rand"
)

type Pipe struct {
	X            float64
	Width        float64
	Gap          float64
	TopHeight    float64
	BottomHeight float64
	Speed        float64

	// Passed[i] is set once player i+1 has flown past the trailing edge.
	Passed [2]bool
}

func (p *Pipe) Update() {
	p.X -= p.Speed
}

// Rects returns the top and bottom obstacle rectangles.
func (p *Pipe) Rects() (top, bottom image.Rectangle) {
	minX := int(p.X)
	maxX := int(p.X + p.Width)
	bottomY := int(p.TopHeight + p.Gap)
	top = image.Rect(minX, 0, maxX, int(p.TopHeight))
	bottom = image.Rect(minX, bottomY, maxX, bottomY+int(p.BottomHeight))
	return top, bottom
}

// Right is the trailing edge birds must pass to score.
func (p *Pipe) Right() float64 {
	return p.X + p.Width
}

func (p *Pipe) Offscreen() bool {
	return p.Right() <= 0
}

// PipeGenerator spawns pipes at a fixed horizontal spacing with a random gap
// position, and moves and retires them.
type PipeGenerator struct {
	params Params
	rnd    *rand.Rand
}

func NewPipeGenerator(p Params, seed int64) *PipeGenerator {
	return &PipeGenerator{
		params: p,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// NewPipe creates a pipe at x. The top height is a whole number drawn
// uniformly from [margin, screenHeight-gap-margin], rounded inwards so a
// fractional margin is still respected.
func (g *PipeGenerator) NewPipe(x float64) *Pipe {
	p := g.params
	lo := int(math.Ceil(p.PipeMargin))
	hi := int(math.Floor(p.ScreenHeight - p.PipeGap - p.PipeMargin))
	top := float64(lo + g.rnd.Intn(hi-lo+1))

	return &Pipe{
		X:            x,
		Width:        p.PipeWidth,
		Gap:          p.PipeGap,
		TopHeight:    top,
		BottomHeight: p.ScreenHeight - top - p.PipeGap,
		Speed:        p.PipeSpeed,
	}
}

// Advance moves every pipe left and drops the ones that left the screen.
// Order is preserved.
func (g *PipeGenerator) Advance(pipes []*Pipe) []*Pipe {
	kept := pipes[:0]
	for _, p := range pipes {
		p.Update()
		if !p.Offscreen() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(pipes); i++ {
		pipes[i] = nil
	}
	return kept
}

// Spawn appends a pipe at the right edge once the newest pipe has travelled
// far enough from it.
func (g *PipeGenerator) Spawn(pipes []*Pipe) []*Pipe {
	p := g.params
	if len(pipes) == 0 || pipes[len(pipes)-1].X < p.ScreenWidth-p.PipeSpacing {
		pipes = append(pipes, g.NewPipe(p.ScreenWidth))
	}
	return pipes
}
