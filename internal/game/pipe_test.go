package game

import "testing"

func TestNewPipeHeightsFillScreen(t *testing.T) {
	g := NewPipeGenerator(DefaultParams(), 1)
	for i := 0; i < 1000; i++ {
		p := g.NewPipe(ScreenWidth)
		if p.TopHeight+p.Gap+p.BottomHeight != ScreenHeight {
			t.Fatalf("top %v + gap %v + bottom %v != %v", p.TopHeight, p.Gap, p.BottomHeight, ScreenHeight)
		}
		if p.TopHeight < PipeMargin || p.BottomHeight < PipeMargin {
			t.Fatalf("segment below margin: top=%v bottom=%v", p.TopHeight, p.BottomHeight)
		}
		if p.TopHeight != float64(int(p.TopHeight)) {
			t.Fatalf("top height %v is not whole", p.TopHeight)
		}
	}
}

func TestNewPipeReachesBothBounds(t *testing.T) {
	params := DefaultParams()
	params.ScreenHeight = params.PipeGap + 2*params.PipeMargin + 1
	g := NewPipeGenerator(params, 3)
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		seen[g.NewPipe(0).TopHeight] = true
	}
	if !seen[PipeMargin] || !seen[PipeMargin+1] || len(seen) != 2 {
		t.Fatalf("top heights seen = %v, want exactly {80, 81}", seen)
	}
}

func TestNewPipeFractionalMargin(t *testing.T) {
	params := DefaultParams()
	params.PipeMargin = 80.5
	g := NewPipeGenerator(params, 5)
	for i := 0; i < 2000; i++ {
		p := g.NewPipe(ScreenWidth)
		if p.TopHeight < params.PipeMargin || p.BottomHeight < params.PipeMargin {
			t.Fatalf("top %v / bottom %v below margin %v", p.TopHeight, p.BottomHeight, params.PipeMargin)
		}
		if p.TopHeight+p.Gap+p.BottomHeight != ScreenHeight {
			t.Fatalf("heights do not fill screen: %+v", p)
		}
	}
}

func TestSpawnSpacing(t *testing.T) {
	g := NewPipeGenerator(DefaultParams(), 1)

	pipes := g.Spawn(nil)
	if len(pipes) != 1 || pipes[0].X != ScreenWidth {
		t.Fatalf("first spawn = %d pipes, want 1 at %v", len(pipes), ScreenWidth)
	}

	spawns := 1
	for tick := 0; tick < 2000; tick++ {
		newest := pipes[len(pipes)-1]
		pipes = g.Advance(pipes)
		pipes = g.Spawn(pipes)
		if spawned := pipes[len(pipes)-1]; spawned != newest {
			if spawned.X != ScreenWidth {
				t.Fatalf("tick %d: spawned at %v, want %v", tick, spawned.X, ScreenWidth)
			}
			if gap := spawned.X - newest.X; gap < PipeSpacing {
				t.Fatalf("tick %d: spawn gap %v < %v", tick, gap, PipeSpacing)
			}
			spawns++
		}
	}
	if spawns < 10 {
		t.Fatalf("spawns = %d, want at least 10", spawns)
	}
}

func TestAdvanceRetiresOffscreenPipes(t *testing.T) {
	g := NewPipeGenerator(DefaultParams(), 1)
	a := &Pipe{X: -PipeWidth + PipeSpeed, Width: PipeWidth, Speed: PipeSpeed}
	b := &Pipe{X: 10, Width: PipeWidth, Speed: PipeSpeed}
	c := &Pipe{X: 900, Width: PipeWidth, Speed: PipeSpeed}

	pipes := g.Advance([]*Pipe{a, b, c})
	if len(pipes) != 2 || pipes[0] != b || pipes[1] != c {
		t.Fatalf("pipes after advance = %v", pipes)
	}
	if b.X != 5 || c.X != 895 {
		t.Fatalf("pipes did not move: b=%v c=%v", b.X, c.X)
	}
}

func TestPipeRects(t *testing.T) {
	p := &Pipe{X: 100, Width: 120, Gap: 320, TopHeight: 200, BottomHeight: 560}
	top, bottom := p.Rects()
	if top.Min.X != 100 || top.Max.X != 220 || top.Min.Y != 0 || top.Max.Y != 200 {
		t.Fatalf("top = %v", top)
	}
	if bottom.Min.Y != 520 || bottom.Max.Y != 1080 {
		t.Fatalf("bottom = %v", bottom)
	}
}
