package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hero-scene/config"
	"github.com/lixenwraith/hero-scene/engine"
	"github.com/lixenwraith/hero-scene/metrics"
	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/render"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/stream"
	"github.com/lixenwraith/hero-scene/vmath"
)

var (
	fpsFlag     = flag.Int("fps", 0, "Frame loop rate, overrides HERO_FPS")
	seedFlag    = flag.Uint64("seed", 0, "Particle seed, overrides HERO_SEED")
	debugFlag   = flag.Bool("debug", false, "Write logs to the log directory")
	metricsFlag = flag.String("metrics", "", "Serve /metrics on this address")
	streamFlag  = flag.String("stream", "", "Serve the websocket scene feed on this address")
)

func main() {
	// Panic recovery: restore the terminal before printing
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHERO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.LogDir, cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Goroutines started through engine.Go report here
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHERO CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("hero: fps=%d seed=%d budget=%d", cfg.FPS, seed, cfg.DeviceBudget)

	composer := scene.New(vmath.NewFastRand(seed))
	pool := render.NewPool(cfg.DeviceBudget)
	loop := engine.NewFrameLoop(engine.SystemClock{}, cfg.FrameInterval())

	var hub *stream.Hub
	gauges := metrics.Gauges{
		Resources: pool.Live,
		Bytes:     pool.Used,
		Mounted:   composer.Mounted,
	}
	if cfg.StreamAddr != "" {
		hub = stream.NewHub(composer, cfg.StreamFPS)
		gauges.Clients = hub.Clients
	}
	collector := metrics.NewCollector(gauges, parameter.FrameStallThreshold)
	loop.SetObserver(collector)

	if err := composer.Mount(loop, pool); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Mount: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := startServers(ctx, cfg, collector, hub)

	loop.Start()

	renderer := render.NewTerminalRenderer(screen)

	events := make(chan tcell.Event, 16)
	engine.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	renderTicker := time.NewTicker(cfg.FrameInterval())
	defer renderTicker.Stop()

running:
	for {
		select {
		case <-ctx.Done():
			break running
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					break running
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}
		case <-renderTicker.C:
			renderer.Render(composer.Latest())
			screen.Show()
		}
	}

	stop()
	for _, srv := range servers {
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := srv.Shutdown(shutdown); err != nil {
			log.Printf("hero: shutdown %s: %v", srv.Addr, err)
		}
		cancel()
	}

	if err := composer.Unmount(); err != nil {
		log.Printf("hero: unmount: %v", err)
	}
	loop.Stop()
	if live := pool.Live(); live != 0 {
		log.Printf("hero: %d resources still live after unmount", live)
	}
}

// applyFlags overlays explicitly set flags on the env config
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *fpsFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "metrics":
			cfg.MetricsAddr = *metricsFlag
		case "stream":
			cfg.StreamAddr = *streamFlag
		}
	})
	return cfg.Validate()
}

// startServers brings up the optional metrics and stream endpoints
// A shared address serves both from one mux
func startServers(ctx context.Context, cfg config.Config, collector *metrics.Collector, hub *stream.Hub) []*http.Server {
	muxes := make(map[string]*http.ServeMux)
	mux := func(addr string) *http.ServeMux {
		m, ok := muxes[addr]
		if !ok {
			m = http.NewServeMux()
			muxes[addr] = m
		}
		return m
	}

	if cfg.MetricsAddr != "" {
		mux(cfg.MetricsAddr).Handle("/metrics", collector.Handler())
	}
	if hub != nil {
		mux(cfg.StreamAddr).Handle("/scene", hub)
		engine.Go(func() {
			if err := hub.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("hero: stream: %v", err)
			}
		})
	}

	servers := make([]*http.Server, 0, len(muxes))
	for addr, m := range muxes {
		srv := &http.Server{Addr: addr, Handler: m, ReadHeaderTimeout: 5 * time.Second}
		servers = append(servers, srv)
		engine.Go(func() {
			log.Printf("hero: listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("hero: serve %s: %v", srv.Addr, err)
			}
		})
	}
	return servers
}
