package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSettings is the playback preference data stored on disk by the demo.
type SavedSettings struct {
	Speed        float64 `json:"speed"`
	Intermission float64 `json:"intermission"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "velloplay",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads saved playback preferences, or nil when none exist.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings persists playback preferences.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
