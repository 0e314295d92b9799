package system

import (
	"image/color"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/trailblazer/common"
	"github.com/milk9111/trailblazer/ecs/component"
)

func drawText(screen *ebiten.Image, view View, t *component.Transform, txt *component.Text) {
	if txt.Face == nil || txt.Value == "" {
		return
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign, op.SecondaryAlign = alignments(txt.Anchor)
	sx, sy := scaleOf(t)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Scale(view.Zoom, view.Zoom)
	x, y := view.ToScreen(t.X, t.Y)
	op.GeoM.Translate(x, y)

	c := txt.Color
	if c == nil {
		c = color.White
	}
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(TextAlpha(txt)))

	text.Draw(screen, txt.Value, txt.Face, op)
}

func alignments(a component.Anchor) (text.Align, text.Align) {
	switch a {
	case component.AnchorTopCenter:
		return text.AlignCenter, text.AlignStart
	case component.AnchorTopLeft:
		return text.AlignStart, text.AlignStart
	}
	return text.AlignCenter, text.AlignCenter
}

// TextAlpha is the opacity of txt given how long it has been shown.
func TextAlpha(txt *component.Text) float64 {
	if txt.FadeIn <= 0 {
		return 1
	}
	return ease.OutQuad(common.Clamp(float64(txt.Age)/float64(txt.FadeIn), 0, 1))
}
