package envseek

// MapResolver implements Resolver for a map[string]string.
// Useful for testing or in-memory configuration.
type MapResolver struct {
	// SourceName identifies this source for logging
	SourceName string
	// Data holds the key-value pairs
	Data map[string]string
}

// NewMapResolver creates a new MapResolver with an optional name.
func NewMapResolver(data map[string]string, name string) *MapResolver {
	if name == "" {
		name = "map"
	}
	return &MapResolver{
		SourceName: name,
		Data:       data,
	}
}

// Resolve retrieves a value from the map. Empty values count as missing.
func (s *MapResolver) Resolve(key string) (string, error) {
	if key == "" {
		return "", newError(s.SourceName, key, ErrEmptyKey, "", nil)
	}
	val := s.Data[key]
	if val == "" {
		return "", newError(s.SourceName, key, ErrNotFound, "", nil)
	}
	return val, nil
}

// Name returns the source name for logging purposes.
func (s *MapResolver) Name() string {
	return s.SourceName
}
