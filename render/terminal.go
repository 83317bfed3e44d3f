package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/scene"
)

const (
	glyphParticle = '·'
	glyphStar     = '•'
	glyphSphere   = '●'
)

// cell is one terminal cell in the float compositing buffer
type cell struct {
	bg    colorful.Color
	cover float64
	glyph rune
	fg    colorful.Color
}

// TerminalRenderer rasterizes frames onto a tcell screen
// Uncovered cells keep the default style so the terminal background shows through
type TerminalRenderer struct {
	screen tcell.Screen
	vp     Viewport
	cells  []cell
}

// NewTerminalRenderer sizes the compositing buffer to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size, call on resize events
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.vp = Viewport{Width: w, Height: h, CellAspect: parameter.CellAspect}
	if cap(r.cells) >= w*h {
		r.cells = r.cells[:w*h]
	} else {
		r.cells = make([]cell, w*h)
	}
}

func (r *TerminalRenderer) Viewport() Viewport { return r.vp }

// Render composites f into the screen buffer and returns the number of painted cells
// Caller decides when to Show
func (r *TerminalRenderer) Render(f *scene.Frame) int {
	clear(r.cells)

	for _, s := range Compose(f, r.vp) {
		switch s.Kind {
		case SpriteParticle:
			r.point(s)
		case SpriteSurface:
			r.fill(s)
		case SpriteSphere:
			r.disc(s)
		}
	}

	return r.flush()
}

func (r *TerminalRenderer) at(x, y int) *cell {
	if !r.vp.Contains(x, y) {
		return nil
	}
	return &r.cells[y*r.vp.Width+x]
}

// atPoint returns the cell containing a projected point; floor so (-1, 0) clips instead of landing on 0
func (r *TerminalRenderer) atPoint(x, y float64) *cell {
	return r.at(int(math.Floor(x)), int(math.Floor(y)))
}

// point draws a particle as a glyph, keeping whatever background is already there
func (r *TerminalRenderer) point(s Sprite) {
	c := r.atPoint(s.X, s.Y)
	if c == nil {
		return
	}
	c.glyph = glyphParticle
	if s.Radius >= parameter.MinSpriteRadius {
		c.glyph = glyphStar
	}
	c.fg = scale(s.Color, s.Alpha)
}

// fill paints one opaque surface sample, hiding particles behind it
func (r *TerminalRenderer) fill(s Sprite) {
	c := r.atPoint(s.X, s.Y)
	if c == nil {
		return
	}
	c.bg = blend(c.bg, s.Color, s.Alpha, BlendAlpha)
	c.cover = math.Max(c.cover, s.Alpha)
	c.glyph = 0
}

// disc draws a sphere core with an exponential screen-blended halo
func (r *TerminalRenderer) disc(s Sprite) {
	aspect := r.vp.CellAspect
	reach := math.Max(s.Radius, s.Glow)

	minX := int(math.Floor(s.X - reach*aspect))
	maxX := int(math.Ceil(s.X + reach*aspect))
	minY := int(math.Floor(s.Y - reach))
	maxY := int(math.Ceil(s.Y + reach))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			c := r.at(x, y)
			if c == nil {
				continue
			}
			dx := (float64(x) + 0.5 - s.X) / aspect
			dy := float64(y) + 0.5 - s.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			switch {
			case dist <= s.Radius:
				c.bg = blend(c.bg, s.Color, s.Alpha, BlendAlpha)
				c.cover = 1
				c.glyph = 0
			case s.Glow > 0 && dist <= s.Glow:
				falloff := math.Exp(-3*(dist-s.Radius)/s.Glow) * 0.5
				c.bg = blend(c.bg, s.Color, falloff, BlendScreen)
				c.cover = math.Max(c.cover, falloff)
			}
		}
	}

	// Sub-cell spheres still get a visible core
	if s.Radius < parameter.MinSpriteRadius {
		if c := r.atPoint(s.X, s.Y); c != nil {
			c.glyph = glyphSphere
			c.fg = s.Color
		}
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (r *TerminalRenderer) flush() int {
	r.screen.Clear()
	painted := 0
	for i := range r.cells {
		c := &r.cells[i]
		if c.cover <= 0 && c.glyph == 0 {
			continue
		}
		style := tcell.StyleDefault
		if c.cover > 0 {
			style = style.Background(toTcell(c.bg))
		}
		glyph := ' '
		if c.glyph != 0 {
			glyph = c.glyph
			style = style.Foreground(toTcell(c.fg))
		}
		r.screen.SetContent(i%r.vp.Width, i/r.vp.Width, glyph, nil, style)
		painted++
	}
	return painted
}
