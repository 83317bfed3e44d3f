package parameter

import "time"

// Frame pacing
const (
	// FrameRate is the default host tick rate (frames per second)
	FrameRate = 30
	// FrameStallThreshold marks a delta as a scheduler stall for logging purposes only, delta is never clamped
	FrameStallThreshold = 250 * time.Millisecond
	// FrameStallLogInterval throttles stall warnings
	FrameStallLogInterval = 5 * time.Second
)

// Terminal rasterization
const (
	// CellAspect is terminal cell height/width, used to stretch X so circles stay round
	CellAspect = 2.0
	// PointLightFalloff is the quadratic distance attenuation coefficient for point lights
	PointLightFalloff = 0.02
	// SpecularPower is the Blinn-Phong exponent scaled by (1 - roughness)
	SpecularPower = 48.0
	// GlowScale extends emissive sphere glow beyond the projected radius
	GlowScale = 1.8
	// MinSpriteRadius is the smallest projected radius drawn as a disc, smaller sprites become a single cell
	MinSpriteRadius = 0.35
)

// Device budget
const (
	// DeviceBudgetBytes is the default resource pool capacity
	DeviceBudgetBytes = 64 << 20
)

// Stream
const (
	// StreamRate is the maximum frames per second pushed to websocket clients
	StreamRate = 20
	// StreamWriteTimeout bounds a single client write
	StreamWriteTimeout = 2 * time.Second
	// StreamClientBuffer is the per-client pending frame queue depth, older frames are dropped
	StreamClientBuffer = 4
)
