package systems

import (
	"github.com/automoto/cyberia-client/components"
	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

const zoomStep = 1.25

// UpdateInput handles the viewer hotkeys: F3 toggles the debug overlay, F4
// switches the camera between per-tick and frame-rate independent smoothing,
// and +/- zoom. Toggles are persisted.
func UpdateInput(ecs *ecs.ECS) {
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		cfg.Camera.FrameRateIndependent = !cfg.Camera.FrameRateIndependent
		changed = true
	}

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
			camera.ZoomTo(camera.Zoom*zoomStep, cfg.Camera.ZoomTweenDuration)
		case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
			camera.ZoomTo(camera.Zoom/zoomStep, cfg.Camera.ZoomTweenDuration)
		case inpututil.IsKeyJustPressed(ebiten.Key0):
			camera.ZoomTo(cfg.Camera.DefaultZoom, cfg.Camera.ZoomTweenDuration)
		}
	}

	if changed {
		s := cfg.CurrentSettings()
		logger.Log.WithFields(logrus.Fields{
			"debug_overlay":          s.DebugOverlay,
			"frame_rate_independent": s.FrameRateIndependent,
		}).Info("settings changed")
		_ = SaveSettings(s)
	}
}
