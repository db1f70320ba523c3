package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const hudMargin = 8

var hudColor = color.RGBA{R: 0xb4, G: 0xb4, B: 0xb4, A: 0xff}

// DrawHUD writes one text line per entry in the top left corner of dst.
func DrawHUD(dst *image.RGBA, lines ...string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(hudColor),
		Face: face,
	}
	lineHeight := face.Metrics().Height
	y := fixed.I(hudMargin) + face.Metrics().Ascent
	for _, line := range lines {
		d.Dot = fixed.Point26_6{X: fixed.I(hudMargin), Y: y}
		d.DrawString(line)
		y += lineHeight
	}
}
