package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestObserveFrame(t *testing.T) {
	c := NewCollector(Gauges{}, 250*time.Millisecond)

	c.ObserveFrame(33 * time.Millisecond)
	c.ObserveFrame(33 * time.Millisecond)
	c.ObserveFrame(2 * time.Second)

	text := scrape(t, c)
	for _, want := range []string{
		"hero_frames_total 3",
		"hero_frame_stalls_total 1",
		"hero_frame_delta_seconds_count 3",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}

func TestStallCounterDisabled(t *testing.T) {
	c := NewCollector(Gauges{}, 0)
	c.ObserveFrame(time.Hour)

	if text := scrape(t, c); !strings.Contains(text, "hero_frame_stalls_total 0") {
		t.Error("stall counted with threshold disabled")
	}
}

func TestHandlerExposesGauges(t *testing.T) {
	resources := 17
	c := NewCollector(Gauges{
		Resources: func() int { return resources },
		Mounted:   func() bool { return true },
	}, 0)
	c.ObserveFrame(10 * time.Millisecond)

	text := scrape(t, c)
	for _, want := range []string{
		"hero_frames_total 1",
		"hero_scene_resources 17",
		"hero_scene_mounted 1",
		"hero_frame_delta_seconds_bucket",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
	if strings.Contains(text, "hero_stream_clients") {
		t.Error("unset gauge was registered")
	}
}
