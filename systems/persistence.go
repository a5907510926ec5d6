package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/cyberia-client/config"
	"github.com/automoto/cyberia-client/logger"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
		return fmt.Errorf("open gdata: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// nothing was saved yet or persistence is unavailable.
func LoadSettings() (*cfg.Settings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logger.Log.WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings cfg.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s cfg.Settings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logger.Log.WithError(err).Warn("could not save settings")
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySavedSettings loads persisted settings into the global configuration.
func ApplySavedSettings() {
	saved, err := LoadSettings()
	if err != nil {
		logger.Log.WithError(err).Warn("ignoring saved settings")
		return
	}
	if saved == nil {
		return
	}
	cfg.ApplySettings(*saved)
	logger.Log.WithField("settings", *saved).Debug("applied saved settings")
}
