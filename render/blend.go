package render

import colorful "github.com/lucasb-eyer/go-colorful"

// BlendMode selects how a sprite composites onto the cell below it
type BlendMode uint8

const (
	// BlendAlpha is standard source-over with sprite alpha
	BlendAlpha BlendMode = iota
	// BlendScreen brightens only, used for additive glow
	BlendScreen
)

func blend(dst, src colorful.Color, alpha float64, mode BlendMode) colorful.Color {
	if alpha <= 0 {
		return dst
	}
	if alpha > 1 {
		alpha = 1
	}
	switch mode {
	case BlendScreen:
		return colorful.Color{
			R: 1 - (1-dst.R)*(1-src.R*alpha),
			G: 1 - (1-dst.G)*(1-src.G*alpha),
			B: 1 - (1-dst.B)*(1-src.B*alpha),
		}
	default:
		return dst.BlendRgb(src, alpha)
	}
}
