package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTerminalRendererPaints(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	r := NewTerminalRenderer(screen)

	if vp := r.Viewport(); vp.Width != 80 || vp.Height != 24 || vp.CellAspect != 2 {
		t.Fatalf("viewport: got %+v", vp)
	}

	painted := r.Render(mountedFrame(t))
	if painted == 0 {
		t.Fatal("no cells painted")
	}
	if painted > 80*24 {
		t.Errorf("painted %d cells on an 80x24 screen", painted)
	}

	glyphs := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch != ' ' && ch != 0 {
				glyphs++
			}
		}
	}
	if glyphs == 0 {
		t.Error("screen holds no glyphs after render")
	}
}

func TestTerminalRendererUnmounted(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)

	if painted := r.Render(nil); painted != 0 {
		t.Errorf("nil frame painted %d cells", painted)
	}
}

func TestTerminalRendererResize(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)

	screen.SetSize(100, 30)
	r.Resize()
	if vp := r.Viewport(); vp.Width != 100 || vp.Height != 30 {
		t.Errorf("viewport after resize: got %dx%d, want 100x30", vp.Width, vp.Height)
	}
	if len(r.cells) != 100*30 {
		t.Errorf("cell buffer: got %d, want %d", len(r.cells), 100*30)
	}
}

func TestTerminalRendererClipsNegativeFraction(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen)
	white := colorful.Color{R: 1, G: 1, B: 1}

	tests := []struct {
		name string
		s    Sprite
	}{
		{"particle left", Sprite{Kind: SpriteParticle, X: -0.5, Y: 5, Color: white, Alpha: 1}},
		{"particle above", Sprite{Kind: SpriteParticle, X: 5, Y: -0.25, Color: white, Alpha: 1}},
		{"surface left", Sprite{Kind: SpriteSurface, X: -0.9, Y: 5, Radius: 0.5, Color: white, Alpha: 1}},
		{"small sphere above", Sprite{Kind: SpriteSphere, X: 5, Y: -0.5, Radius: 0.1, Color: white, Alpha: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clear(r.cells)
			switch tt.s.Kind {
			case SpriteParticle:
				r.point(tt.s)
			case SpriteSurface:
				r.fill(tt.s)
			case SpriteSphere:
				r.disc(tt.s)
			}
			for i, c := range r.cells {
				if c.glyph != 0 || c.cover > 0 {
					t.Errorf("cell (%d,%d) painted by off-screen sprite", i%20, i/20)
				}
			}
		})
	}
}

func TestTerminalRendererPaintsInsideEdge(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	r := NewTerminalRenderer(screen)

	r.point(Sprite{Kind: SpriteParticle, X: 0.5, Y: 0.5, Color: colorful.Color{R: 1}, Alpha: 1})
	if r.cells[0].glyph != glyphParticle {
		t.Errorf("cell (0,0) glyph: got %q, want %q", r.cells[0].glyph, glyphParticle)
	}
}
