package embedding

import (
	"log"
	"sync"

	"github.com/firstmatch/gh-firstmatch/internal/config"
)

// Loader lazily builds the embedding provider and memoizes it for the
// lifetime of the process. A successful build is cached forever; a failed
// build is retried on the next Get. The mutex keeps concurrent requests
// from building the provider twice.
type Loader struct {
	mu       sync.Mutex
	build    func() (Provider, error)
	provider Provider
}

// NewLoader creates a loader for the configured provider chain
func NewLoader(cfg *config.EmbeddingConfig) *Loader {
	return &Loader{
		build: func() (Provider, error) {
			return NewFallbackProvider(cfg)
		},
	}
}

// newLoaderWithBuilder is used by tests to inject a fake provider
func newLoaderWithBuilder(build func() (Provider, error)) *Loader {
	return &Loader{build: build}
}

// Get returns the memoized provider, building it on first use
func (l *Loader) Get() (Provider, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.provider != nil {
		return l.provider, nil
	}

	provider, err := l.build()
	if err != nil {
		log.Printf("embedding: provider load failed: %v", err)
		return nil, err
	}

	log.Printf("embedding: provider loaded")
	l.provider = provider
	return l.provider, nil
}

// Ready reports whether the provider has been loaded
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.provider != nil
}
