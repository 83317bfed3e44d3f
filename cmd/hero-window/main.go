// Command hero-window renders the hero scene in a desktop window
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/config"
	"github.com/lixenwraith/hero-scene/engine"
	"github.com/lixenwraith/hero-scene/render"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

const (
	windowWidth  = 960
	windowHeight = 540
	// glowLayers concentric translucent discs approximate the sphere bloom
	glowLayers = 4
)

var (
	widthFlag  = flag.Int("width", windowWidth, "Window width in pixels")
	heightFlag = flag.Int("height", windowHeight, "Window height in pixels")
	seedFlag   = flag.Uint64("seed", 0, "Particle seed, overrides HERO_SEED")
)

// window drives the frame loop from ebiten's update tick so the scene advances at the window's TPS
type window struct {
	loop     *engine.FrameLoop
	composer *scene.Composer
	vp       render.Viewport
}

func (w *window) Update() error {
	w.loop.Advance()
	return nil
}

func (w *window) Draw(dst *ebiten.Image) {
	for _, s := range render.Compose(w.composer.Latest(), w.vp) {
		x, y := float32(s.X), float32(s.Y)
		if s.Glow > 0 {
			for i := glowLayers; i > 0; i-- {
				r := float32(s.Glow) * float32(i) / glowLayers
				vector.DrawFilledCircle(dst, x, y, r, rgba(s.Color, 0.12*s.Alpha), true)
			}
		}
		r := float32(math.Max(s.Radius, 1))
		vector.DrawFilledCircle(dst, x, y, r, rgba(s.Color, s.Alpha), true)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.vp.Width, w.vp.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func rgba(c colorful.Color, alpha float64) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	a := math.Max(0, math.Min(1, alpha))
	// Premultiplied, as ebiten expects
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	var rng scene.Rand
	if seed != 0 {
		rng = vmath.NewFastRand(seed)
	}
	composer := scene.New(rng)
	pool := render.NewPool(cfg.DeviceBudget)
	loop := engine.NewFrameLoop(engine.SystemClock{}, cfg.FrameInterval())

	if err := composer.Mount(loop, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Mount: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := composer.Unmount(); err != nil {
			log.Printf("hero-window: unmount: %v", err)
		}
	}()

	w := &window{
		loop:     loop,
		composer: composer,
		vp:       render.Viewport{Width: *widthFlag, Height: *heightFlag, CellAspect: 1},
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("hero")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	// Transparent camera background
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGameWithOptions(w, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		log.Printf("hero-window: %v", err)
	}
}
