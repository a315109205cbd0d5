package sift

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// presetsKey is the storage key for the preset list.
const presetsKey = "sift.presets"

// Preset is a named, saved filter query string. Presets are created by
// serializing a live spec with QueryString and applied by feeding the
// stored query back through Parse; they are never mutated in place.
type Preset struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Query string `json:"query"`
}

// DefaultPresets returns the built-in preset set used when storage holds
// no preset list.
func DefaultPresets() []Preset {
	return []Preset{
		{ID: "builtin-dead-functions", Name: "Dead functions", Query: "kind:function state:dead"},
		{ID: "builtin-cycle-symbols", Name: "Cycle symbols", Query: "state:cycle"},
		{ID: "builtin-entry-points", Name: "Entry points", Query: "state:entry"},
		{ID: "builtin-no-callers", Name: "No callers", Query: "callers:0"},
	}
}

// PresetStore keeps the preset list in durable storage, independent of
// any live Engine.
type PresetStore struct {
	storage Storage
	log     *logrus.Logger
}

// PresetOption configures a PresetStore.
type PresetOption func(*PresetStore)

// WithPresetLogger overrides the logger used for storage failures.
func WithPresetLogger(log *logrus.Logger) PresetOption {
	return func(p *PresetStore) { p.log = log }
}

// NewPresetStore creates a PresetStore over the given backend.
func NewPresetStore(storage Storage, opts ...PresetOption) *PresetStore {
	p := &PresetStore{storage: storage}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logrus.New()
		p.log.SetLevel(logrus.WarnLevel)
	}
	return p
}

// Load reads the stored preset list. Absent or unreadable storage yields
// DefaultPresets, never an error.
func (p *PresetStore) Load() []Preset {
	raw, ok, err := p.storage.Get(presetsKey)
	if err != nil {
		p.log.WithError(err).Warn("loading presets")
		return DefaultPresets()
	}
	if !ok {
		return DefaultPresets()
	}
	var presets []Preset
	if err := json.Unmarshal([]byte(raw), &presets); err != nil {
		p.log.WithError(err).Warn("decoding presets")
		return DefaultPresets()
	}
	return presets
}

// Save overwrites the stored list. Failures are logged, not propagated.
func (p *PresetStore) Save(presets []Preset) {
	raw, err := json.Marshal(presets)
	if err != nil {
		p.log.WithError(err).Warn("encoding presets")
		return
	}
	if err := p.storage.Set(presetsKey, string(raw)); err != nil {
		p.log.WithError(err).Warn("saving presets")
	}
}

// Add appends a preset under a fresh random ID and saves the list.
// Random IDs keep rapid successive Adds collision-free.
func (p *PresetStore) Add(name, query string) Preset {
	preset := Preset{ID: uuid.NewString(), Name: name, Query: query}
	p.Save(append(p.Load(), preset))
	return preset
}

// Remove deletes the preset with the given ID, leaving the rest of the
// list intact. Unknown IDs are a no-op.
func (p *PresetStore) Remove(id string) {
	presets := p.Load()
	kept := presets[:0]
	for _, preset := range presets {
		if preset.ID != id {
			kept = append(kept, preset)
		}
	}
	p.Save(kept)
}

// Get returns the preset with the given name, or false when absent.
func (p *PresetStore) Get(name string) (Preset, bool) {
	for _, preset := range p.Load() {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}
