// Package metrics exposes frame loop and scene resource metrics in Prometheus format
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Gauges are read lazily at scrape time
type Gauges struct {
	// Resources returns outstanding device handles
	Resources func() int
	// Bytes returns outstanding device bytes
	Bytes func() int
	// Mounted reports scene lifecycle state
	Mounted func() bool
	// Clients returns connected stream clients
	Clients func() int
}

// Collector records per-frame observations and serves them
// Uses its own registry so several collectors can coexist in one process (tests)
type Collector struct {
	registry *prometheus.Registry

	frames     prometheus.Counter
	frameDelta prometheus.Histogram
	stalls     prometheus.Counter

	stallThreshold time.Duration
}

// NewCollector registers frame metrics and any non-nil gauge callbacks
func NewCollector(g Gauges, stallThreshold time.Duration) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hero_frames_total",
			Help: "Total frames dispatched by the frame loop",
		}),
		frameDelta: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hero_frame_delta_seconds",
			Help:    "Wall-time gap between consecutive frames",
			Buckets: []float64{0.005, 0.01, 0.017, 0.025, 0.034, 0.05, 0.1, 0.25, 1, 5},
		}),
		stalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hero_frame_stalls_total",
			Help: "Frames whose delta exceeded the stall threshold",
		}),
		stallThreshold: stallThreshold,
	}

	c.registry.MustRegister(c.frames, c.frameDelta, c.stalls)

	if g.Resources != nil {
		c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "hero_scene_resources",
			Help: "Device resources held by the mounted scene",
		}, func() float64 { return float64(g.Resources()) }))
	}
	if g.Bytes != nil {
		c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "hero_scene_resource_bytes",
			Help: "Device bytes held by the mounted scene",
		}, func() float64 { return float64(g.Bytes()) }))
	}
	if g.Mounted != nil {
		c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "hero_scene_mounted",
			Help: "1 while the scene is mounted",
		}, func() float64 {
			if g.Mounted() {
				return 1
			}
			return 0
		}))
	}
	if g.Clients != nil {
		c.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "hero_stream_clients",
			Help: "Connected websocket clients",
		}, func() float64 { return float64(g.Clients()) }))
	}

	return c
}

// ObserveFrame implements engine.FrameObserver
func (c *Collector) ObserveFrame(delta time.Duration) {
	c.frames.Inc()
	c.frameDelta.Observe(delta.Seconds())
	if c.stallThreshold > 0 && delta > c.stallThreshold {
		c.stalls.Inc()
	}
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
