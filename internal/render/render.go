// Package render draws the world onto an ebiten screen. It only reads the
// world; nothing here changes game state.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dawkrish/flappy-duel/internal/game"
)

var (
	colorWhite     = color.RGBA{255, 255, 255, 0xff}
	colorBlack     = color.RGBA{0, 0, 0, 0xff}
	colorGreen     = color.RGBA{0, 255, 0, 0xff}
	colorDarkGreen = color.RGBA{0, 100, 0, 0xff}
	colorSky       = color.RGBA{100, 200, 255, 0xff}
	colorYellow    = color.RGBA{255, 255, 0, 0xff}
	colorOrange    = color.RGBA{255, 165, 0, 0xff}
	colorRed       = color.RGBA{255, 0, 0, 0xff}
	colorGray      = color.RGBA{128, 128, 128, 0xff}

	playerColors = [2]color.RGBA{colorYellow, colorOrange}
)

const (
	fontBig   = 64
	fontMid   = 36
	fontSmall = 24

	capHeight   = 50
	capOverhang = 10
)

type Renderer struct {
	faceSource *text.GoTextFaceSource
	keys       [2]string // jump key labels for the title screen
	pixel      *ebiten.Image
}

// New prepares fonts. keys are the keyboard labels of the two jump keys.
func New(keys [2]string) (*Renderer, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	pixel := ebiten.NewImage(3, 3)
	pixel.Fill(colorWhite)
	return &Renderer{
		faceSource: s,
		keys:       keys,
		pixel:      pixel,
	}, nil
}

// Draw renders one frame. connected tells whether the button device is up.
func (r *Renderer) Draw(screen *ebiten.Image, w *game.World, connected bool) {
	width := float32(w.Params.ScreenWidth)
	height := float32(w.Params.ScreenHeight)

	r.drawBackground(screen, width, height)
	for _, p := range w.Pipes {
		r.drawPipe(screen, p)
	}
	for i, b := range w.Birds {
		r.drawBird(screen, b, playerColors[i])
	}

	r.drawText(screen, fmt.Sprintf("Player 1: %d", w.Scores[0]), fontMid, 20, 20, colorYellow, false)
	r.drawText(screen, fmt.Sprintf("Player 2: %d", w.Scores[1]), fontMid, 20, 100, colorOrange, false)
	if connected {
		r.drawText(screen, "Buttons Connected", fontSmall, 20, float64(height)-60, colorGreen, false)
	} else {
		status := fmt.Sprintf("Buttons Disconnected - Use %s/%s keys", r.keys[0], r.keys[1])
		r.drawText(screen, status, fontSmall, 20, float64(height)-60, colorRed, false)
	}

	cx := float64(width) / 2
	switch w.Mode {
	case game.ModeTitle:
		r.drawText(screen, "Flappy Bird Championship", fontBig, cx, 300, colorBlack, true)
		r.drawText(screen, fmt.Sprintf("Player 1 (Yellow) - Button 1 or %s", r.keys[0]), fontMid, cx, 500, colorYellow, true)
		r.drawText(screen, fmt.Sprintf("Player 2 (Orange) - Button 2 or %s", r.keys[1]), fontMid, cx, 580, colorOrange, true)
		r.drawText(screen, "Press any button to start!", fontMid, cx, 700, colorBlack, true)

	case game.ModeGame:
		for _, b := range w.Birds {
			if !b.Alive {
				r.drawText(screen, "DEAD", fontMid, b.X, b.Y-100, colorRed, true)
			}
		}

	case game.ModeOver:
		r.drawText(screen, "Game Over!", fontBig, cx, 400, colorRed, true)
		r.drawText(screen, "Winner: "+w.Winner, fontMid, cx, 560, colorBlack, true)
		r.drawText(screen, fmt.Sprintf("Final Scores - P1: %d, P2: %d", w.Scores[0], w.Scores[1]), fontMid, cx, 640, colorBlack, true)
		r.drawText(screen, "Press any button to restart", fontMid, cx, 720, colorBlack, true)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image, width, height float32) {
	screen.Fill(colorSky)
	vector.StrokeLine(screen, width/2, 0, width/2, height, 2, colorWhite, false)

	for i := 0; i < 8; i++ {
		x := float32(200 + i*250)
		y := float32(120 + (i%2)*60)
		vector.DrawFilledCircle(screen, x, y, 40, colorWhite, true)
		vector.DrawFilledCircle(screen, x+30, y, 30, colorWhite, true)
		vector.DrawFilledCircle(screen, x+60, y, 40, colorWhite, true)
	}
}

func (r *Renderer) drawPipe(screen *ebiten.Image, p *game.Pipe) {
	x := float32(p.X)
	w := float32(p.Width)
	top := float32(p.TopHeight)
	bottomY := float32(p.TopHeight + p.Gap)
	bottom := float32(p.BottomHeight)

	outlinedRect(screen, x, 0, w, top, colorDarkGreen)
	outlinedRect(screen, x, bottomY, w, bottom, colorDarkGreen)

	capX := x - capOverhang
	capW := w + 2*capOverhang
	outlinedRect(screen, capX, top-capHeight, capW, capHeight, colorGreen)
	outlinedRect(screen, capX, bottomY, capW, capHeight, colorGreen)
}

func (r *Renderer) drawBird(screen *ebiten.Image, b *game.Bird, body color.RGBA) {
	x, y, rad := float32(b.X), float32(b.Y), float32(b.Radius)
	if !b.Alive {
		vector.DrawFilledCircle(screen, x, y, rad, colorGray, true)
		vector.StrokeCircle(screen, x, y, rad, 2, colorBlack, true)
		return
	}

	vector.DrawFilledCircle(screen, x, y, rad, body, true)
	vector.StrokeCircle(screen, x, y, rad, 2, colorBlack, true)
	vector.DrawFilledCircle(screen, x+14, y-8, 5, colorBlack, true)
	r.fillTriangle(screen, [3][2]float32{{x + 25, y}, {x + 40, y - 8}, {x + 40, y + 8}}, colorRed)
}
