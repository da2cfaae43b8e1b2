package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dimfu/rhythm/theory"
	"github.com/pkg/errors"
)

// Preset is a named meter stored in the preset file.
type Preset struct {
	Key         string `json:"key"`
	Tempo       int64  `json:"tempo"`
	Timesig     string `json:"timesig"`
	Subdivision string `json:"subdivision,omitempty"`
	Groups      bool   `json:"groups,omitempty"`
}

// Meter converts the preset into a checked Meter.
func (p Preset) Meter() (Meter, error) {
	if !ValidTempo(p.Tempo) {
		return Meter{}, fmt.Errorf("tempo %d is not valid make sure its above %v and below %v", p.Tempo, MIN_TEMPO, MAX_TEMPO)
	}
	ts, err := ValidTimeSig(p.Timesig)
	if err != nil {
		return Meter{}, err
	}
	sub, err := ts.BeatValue()
	if err != nil {
		return Meter{}, err
	}
	if p.Subdivision != "" {
		if sub, err = theory.ParseDurationValue(p.Subdivision); err != nil {
			return Meter{}, err
		}
	}
	return Meter{Signature: ts, Subdivision: sub, Tempo: p.Tempo, Groups: p.Groups}, nil
}

type PresetManager struct {
	Presets    []Preset
	ConfigPath string
}

func NewPresetManager() (*PresetManager, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return &PresetManager{ConfigPath: path, Presets: []Preset{}}, nil
}

// LoadPresets opens the preset file. A missing or empty file holds no
// presets.
func LoadPresets() (*PresetManager, error) {
	pm, err := NewPresetManager()
	if err != nil {
		return nil, err
	}
	if err := pm.Load(); err != nil {
		return nil, err
	}
	return pm, nil
}

func (pm *PresetManager) Load() error {
	data, err := os.ReadFile(pm.ConfigPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &pm.Presets); err != nil {
		return errors.Wrapf(err, "decode %s", pm.ConfigPath)
	}
	return nil
}

func (pm *PresetManager) Get(key string) *Preset {
	for i := range pm.Presets {
		if pm.Presets[i].Key == key {
			return &pm.Presets[i]
		}
	}
	return nil
}

func (pm *PresetManager) Write() error {
	data, err := json.MarshalIndent(pm.Presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(pm.ConfigPath, data, 0644)
}

func (pm *PresetManager) Create(p Preset) error {
	if p.Key == "" {
		return errors.New("preset key is required")
	}
	if pm.Get(p.Key) != nil {
		return fmt.Errorf("`%v` preset already exists", p.Key)
	}
	if _, err := p.Meter(); err != nil {
		return err
	}
	pm.Presets = append(pm.Presets, p)
	return pm.Write()
}

func (pm *PresetManager) Delete(key string) error {
	if pm.Get(key) == nil {
		return fmt.Errorf("`%v` preset not found", key)
	}
	kept := pm.Presets[:0]
	for _, p := range pm.Presets {
		if p.Key != key {
			kept = append(kept, p)
		}
	}
	pm.Presets = kept
	return pm.Write()
}
