package swiper

// StateStore persists swiper state between sessions.
// Keys are swiper IDs; values are state structs such as ActiveState.
type StateStore interface {
	Get(id string) (any, bool)
	Set(id string, value any)
	Delete(id string)
}

// MapStateStore is a simple in-memory StateStore implementation.
type MapStateStore map[string]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id string) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id string, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id string) {
	delete(m, id)
}

// GetState retrieves typed state from a store.
// Returns defaultVal if the state doesn't exist or has wrong type.
func GetState[T any](store StateStore, id string, defaultVal T) T {
	if store == nil {
		return defaultVal
	}
	if v, ok := store.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state.
func SetState[T any](store StateStore, id string, value T) {
	if store != nil {
		store.Set(id, value)
	}
}

// DeleteState removes state from a store.
func DeleteState(store StateStore, id string) {
	if store != nil {
		store.Delete(id)
	}
}

// ActiveState records the last settled real index of a swiper.
type ActiveState struct {
	Index int `yaml:"index"`
	Total int `yaml:"total"` // Real item count when saved
}
