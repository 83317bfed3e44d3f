package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/hero-scene/parameter"
)

// FrameObserver receives the measured delta of every dispatched frame
type FrameObserver interface {
	ObserveFrame(delta time.Duration)
}

type subscriber struct {
	id uint64
	fn func(delta float64)
}

// FrameLoop is the host animation scheduler: it measures wall-time delta between ticks
// and invokes every registered callback sequentially on a single goroutine
// Delta is never clamped; a stalled host delivers one large delta on resume
type FrameLoop struct {
	clock    TimeSource
	interval time.Duration

	// dispatchMu is held for a whole dispatch so cancel can wait out an in-flight frame
	// Callbacks must not cancel themselves
	dispatchMu sync.Mutex
	last       time.Time

	mu     sync.RWMutex
	subs   []subscriber
	nextID uint64

	observer FrameObserver
	stallLog *rate.Limiter
	frames   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameLoop creates a loop ticking every interval; the first delta is measured from creation
func NewFrameLoop(clock TimeSource, interval time.Duration) *FrameLoop {
	if clock == nil {
		clock = SystemClock{}
	}
	if interval <= 0 {
		interval = time.Second / parameter.FrameRate
	}
	return &FrameLoop{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
		stallLog: rate.NewLimiter(rate.Every(parameter.FrameStallLogInterval), 1),
		stopChan: make(chan struct{}),
	}
}

// SetObserver installs a per-frame observer, must be called before Start
func (l *FrameLoop) SetObserver(o FrameObserver) {
	l.observer = o
}

// Register adds a frame callback; the returned cancel removes it and waits for any in-flight dispatch
func (l *FrameLoop) Register(fn func(delta float64)) (cancel func()) {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscriber{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.dispatchMu.Lock()
			defer l.dispatchMu.Unlock()

			l.mu.Lock()
			defer l.mu.Unlock()
			for i, s := range l.subs {
				if s.id == id {
					l.subs = append(l.subs[:i], l.subs[i+1:]...)
					break
				}
			}
		})
	}
}

// Len returns the number of registered callbacks
func (l *FrameLoop) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subs)
}

// Frames returns the number of dispatched frames
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

// Advance measures the wall-time gap since the previous frame and dispatches it
// Used by the internal ticker and by hosts that own their own vsync (window backends)
func (l *FrameLoop) Advance() {
	l.dispatchMu.Lock()
	defer l.dispatchMu.Unlock()

	now := l.clock.Now()
	d := now.Sub(l.last)
	if d < 0 {
		d = 0
	}
	l.last = now

	l.dispatchLocked(d)
}

// Step dispatches a synthetic delta in seconds without consulting the clock
func (l *FrameLoop) Step(delta float64) {
	l.dispatchMu.Lock()
	defer l.dispatchMu.Unlock()
	l.dispatchLocked(time.Duration(delta * float64(time.Second)))
}

func (l *FrameLoop) dispatchLocked(d time.Duration) {
	l.mu.RLock()
	subs := make([]subscriber, len(l.subs))
	copy(subs, l.subs)
	l.mu.RUnlock()

	seconds := d.Seconds()
	for _, s := range subs {
		s.fn(seconds)
	}

	l.frames.Add(1)

	if l.observer != nil {
		l.observer.ObserveFrame(d)
	}
	if d > parameter.FrameStallThreshold && l.stallLog.Allow() {
		log.Printf("frame loop: stall, delta %v", d)
	}
}

// Start begins ticking on a background goroutine
func (l *FrameLoop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		Go(l.run)
	}
}

// Stop halts the ticker and waits for the loop goroutine to exit
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

func (l *FrameLoop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			l.Advance()
		}
	}
}
