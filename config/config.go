package config

import (
	"image/color"
	"time"

	"github.com/automoto/cyberia-client/shared/netconfig"
)

// Config holds general client configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// InterpConfig controls how snapshots are blended into render positions
type InterpConfig struct {
	Window            time.Duration // Blend duration from previous to newest snapshot
	MaxPlausibleSpeed float64       // Pixels per second; faster jumps teleport (0 disables)

	// When true a new snapshot starts blending from the last rendered position,
	// otherwise from the old target.
	PreviousFromRendered bool
}

// DirectionConfig controls direction inference from position deltas
type DirectionConfig struct {
	HistoryCapacity int                   // Classified directions kept for smoothing
	Threshold       float64               // Delta magnitude (pixels) at or below which the entity is still
	Orientation     netconfig.Orientation // Y axis convention for the compass table
}

// AnimationConfig controls animation state machines
type AnimationConfig struct {
	WalkingGrace     time.Duration // Keeps the WALKING key suffix after brief pauses
	GraceAffectsMode bool          // Also report WALKING during the grace window
	DefaultLayers    []string      // Layers rendered when a snapshot names none
	FallbackColor    color.RGBA    // Color used for out-of-range palette indices
	FrameWidth       float64       // Authored frame width in pixels, used to derive display scale
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing      float64       // Per-tick fraction of the remaining distance (0.0-1.0)
	FrameRateIndependent bool          // Use 1-exp(-FollowRate*dt) instead of FollowSmoothing
	FollowRate           float64       // k for the frame-rate independent form, per second
	ZoomTweenDuration    time.Duration // Duration of zoom changes
	DefaultZoom          float64
}

// NetworkConfig contains connection settings
type NetworkConfig struct {
	Address    string
	PlayerName string
	Version    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw entity bounds and registry counters
}

// Global configuration instances
var C *Config
var Interp InterpConfig
var Direction DirectionConfig
var Animation AnimationConfig
var Camera CameraConfig
var Network NetworkConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Transparent = color.RGBA{}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Interp = InterpConfig{
		Window:               100 * time.Millisecond, // ~2 server ticks at 20Hz
		MaxPlausibleSpeed:    1200,
		PreviousFromRendered: true,
	}

	Direction = DirectionConfig{
		HistoryCapacity: 5,
		Threshold:       0.05,
		Orientation:     netconfig.OrientationScreen,
	}

	Animation = AnimationConfig{
		WalkingGrace:     500 * time.Millisecond,
		GraceAffectsMode: false,
		DefaultLayers:    []string{"skin"},
		FallbackColor:    Magenta,
		FrameWidth:       16,
	}

	Camera = CameraConfig{
		FollowSmoothing:      0.1,
		FrameRateIndependent: false,
		FollowRate:           6.3, // matches 0.1 per tick at 60 TPS
		ZoomTweenDuration:    400 * time.Millisecond,
		DefaultZoom:          1.0,
	}

	Network = NetworkConfig{
		Address:    "localhost:7373",
		PlayerName: "player",
		Version:    "0.1.0",
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
