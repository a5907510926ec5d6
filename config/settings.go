package config

import "github.com/automoto/cyberia-client/shared/netconfig"

// Settings are the user-tunable presentation options that survive restarts.
type Settings struct {
	WorldOrientation     bool    `json:"worldOrientation"`
	GraceAffectsMode     bool    `json:"graceAffectsMode"`
	FrameRateIndependent bool    `json:"frameRateIndependent"`
	FollowSmoothing      float64 `json:"followSmoothing"`
	DebugOverlay         bool    `json:"debugOverlay"`
}

// CurrentSettings captures the live configuration as Settings.
func CurrentSettings() Settings {
	return Settings{
		WorldOrientation:     Direction.Orientation == netconfig.OrientationWorld,
		GraceAffectsMode:     Animation.GraceAffectsMode,
		FrameRateIndependent: Camera.FrameRateIndependent,
		FollowSmoothing:      Camera.FollowSmoothing,
		DebugOverlay:         Debug.Overlay,
	}
}

// ApplySettings copies s into the global configuration. Out of range
// smoothing values are ignored.
func ApplySettings(s Settings) {
	if s.WorldOrientation {
		Direction.Orientation = netconfig.OrientationWorld
	} else {
		Direction.Orientation = netconfig.OrientationScreen
	}
	Animation.GraceAffectsMode = s.GraceAffectsMode
	Camera.FrameRateIndependent = s.FrameRateIndependent
	if s.FollowSmoothing > 0 && s.FollowSmoothing <= 1 {
		Camera.FollowSmoothing = s.FollowSmoothing
	}
	Debug.Overlay = s.DebugOverlay
}
