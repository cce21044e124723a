package store

// Memory is an in-process KV used by tests and by the seeded demo when
// no database path is configured.
type Memory struct {
	items map[string]string
}

func NewMemory() *Memory {
	return &Memory{items: map[string]string{}}
}

func (m *Memory) GetItem(key string) (string, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(key, value string) error {
	m.items[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
