package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func outlinedRect(dst *ebiten.Image, x, y, w, h float32, fill color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, fill, false)
	vector.StrokeRect(dst, x, y, w, h, 2, colorBlack, false)
}

// drawText draws s with its top edge at y. With center set, x is the
// horizontal centre of the text; otherwise its left edge.
func (r *Renderer) drawText(dst *ebiten.Image, s string, size float64, x, y float64, clr color.Color, center bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if center {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, &text.GoTextFace{
		Source: r.faceSource,
		Size:   size,
	}, op)
}

func (r *Renderer) fillTriangle(dst *ebiten.Image, pts [3][2]float32, clr color.RGBA) {
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff

	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	src := r.pixel.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
