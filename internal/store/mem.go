package store

// MemKV is an in-memory KV used in tests and throwaway sessions.
type MemKV struct {
	values map[string]string
}

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string]string)}
}

// Get returns the value for key.
func (s *MemKV) Get(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

// Put stores value under key.
func (s *MemKV) Put(key, value string) error {
	s.values[key] = value
	return nil
}
