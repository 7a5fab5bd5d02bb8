package cart

import "sync"

// KV is the persistence interface the cart store serializes into. It models
// a browser's per-device storage: one named slot, no cross-device sync.
type KV interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error.
	Delete(key string) error
}

// memoryKV implements KV in process memory.
type memoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an in-memory KV, useful for tests and ephemeral carts.
func NewMemoryKV() KV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (m *memoryKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *memoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
