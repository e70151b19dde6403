package swiper

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// gdata object holding one property per swiper ID.
const stateObject = "swiper"

// GdataStateStore is a StateStore that persists ActiveState values across
// sessions with gdata. Other values are kept in memory only.
//
// The manager may be nil, in which case the store degrades to memory only.
type GdataStateStore struct {
	manager *gdata.Manager
	cache   MapStateStore
}

// OpenGdataStateStore opens the platform data directory for appName.
// On failure it returns a memory-only store and the error.
func OpenGdataStateStore(appName string) (*GdataStateStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewGdataStateStore(nil), fmt.Errorf("failed to open swiper state storage: %w", err)
	}
	return NewGdataStateStore(m), nil
}

// NewGdataStateStore wraps an existing manager, which may be nil.
func NewGdataStateStore(manager *gdata.Manager) *GdataStateStore {
	return &GdataStateStore{manager: manager, cache: MapStateStore{}}
}

// Persistent reports whether values reach disk.
func (s *GdataStateStore) Persistent() bool { return s.manager != nil }

// Get returns the cached value, loading a persisted ActiveState on first use.
func (s *GdataStateStore) Get(id string) (any, bool) {
	if v, ok := s.cache.Get(id); ok {
		return v, true
	}
	st, ok, err := s.Load(id)
	if err != nil {
		swiperLogger.Warn("failed to load swiper state", "id", id, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	s.cache.Set(id, st)
	return st, true
}

// Set caches the value and persists it when it is an ActiveState.
func (s *GdataStateStore) Set(id string, value any) {
	s.cache.Set(id, value)
	st, ok := value.(ActiveState)
	if !ok {
		return
	}
	if err := s.Save(id, st); err != nil {
		swiperLogger.Warn("failed to save swiper state", "id", id, "error", err)
	}
}

// Delete forgets the value in memory and on disk.
func (s *GdataStateStore) Delete(id string) {
	s.cache.Delete(id)
	if s.manager == nil {
		return
	}
	prop := stateProperty(id)
	if !s.manager.ObjectPropExists(stateObject, prop) {
		return
	}
	if err := s.manager.DeleteObjectProp(stateObject, prop); err != nil {
		swiperLogger.Warn("failed to delete swiper state", "id", id, "error", err)
	}
}

// Load reads a persisted ActiveState. ok is false when nothing was saved.
func (s *GdataStateStore) Load(id string) (st ActiveState, ok bool, err error) {
	if s.manager == nil {
		return ActiveState{}, false, nil
	}
	prop := stateProperty(id)
	if !s.manager.ObjectPropExists(stateObject, prop) {
		return ActiveState{}, false, nil
	}
	data, err := s.manager.LoadObjectProp(stateObject, prop)
	if err != nil {
		return ActiveState{}, false, fmt.Errorf("failed to load swiper state %q: %w", id, err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return ActiveState{}, false, fmt.Errorf("failed to unmarshal swiper state %q: %w", id, err)
	}
	return st, true, nil
}

// Save writes an ActiveState. It is a no-op without a manager.
func (s *GdataStateStore) Save(id string, st ActiveState) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal swiper state %q: %w", id, err)
	}
	if err := s.manager.SaveObjectProp(stateObject, stateProperty(id), data); err != nil {
		return fmt.Errorf("failed to save swiper state %q: %w", id, err)
	}
	return nil
}

// stateProperty maps an ID to a file-safe property name.
func stateProperty(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "default"
	}
	return b.String()
}
