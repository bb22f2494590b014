package cache

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithMaxSize bounds the number of cached results. Non-positive sizes
// disable caching.
func WithMaxSize(size int) Option {
	return func(s *Store) {
		s.maxSize = size
	}
}
