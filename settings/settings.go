package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "alienswim"

	settingsObject   = "settings"
	settingsProperty = "user"

	volumeStep = 0.1
)

// Settings are the user preferences kept between runs.
type Settings struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
	Debug  bool    `yaml:"debug"`
}

func Default() Settings {
	return Settings{Volume: 0.8}
}

// EffectiveVolume is the gain applied to every sound.
func (s Settings) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.Volume
}

// Store loads and saves Settings through gdata. With a nil manager it keeps
// settings in memory only.
type Store struct {
	manager  *gdata.Manager
	settings Settings
}

// Open opens the platform data directory for appName. A failure to open
// storage is logged and yields an in-memory store.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: storage unavailable, using defaults: %v", err)
		m = nil
	}
	s := NewStore(m)
	if err := s.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return s
}

func NewStore(m *gdata.Manager) *Store {
	return &Store{manager: m, settings: Default()}
}

func (s *Store) Load() error {
	s.settings = Default()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	loaded.Volume = clampVolume(loaded.Volume)
	s.settings = loaded
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func (s *Store) Get() Settings {
	return s.settings
}

// Persistent reports whether changes survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

func (s *Store) StepVolume(steps int) {
	s.settings.Volume = clampVolume(s.settings.Volume + float64(steps)*volumeStep)
}

func (s *Store) ToggleMute() {
	s.settings.Muted = !s.settings.Muted
}

func (s *Store) SetDebug(on bool) {
	s.settings.Debug = on
}

func clampVolume(v float64) float64 {
	// Round to the step grid so repeated +/- never drifts.
	v = float64(int(v/volumeStep+0.5)) * volumeStep
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
