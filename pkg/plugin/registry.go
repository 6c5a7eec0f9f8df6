package plugin

import (
	"sync"

	"github.com/openarchive/aipkit/pkg/plugin/status"
)

// Registry maps logical codec names to disseminator and ingester
// implementations. Registration normally happens once at process start;
// lookups after that are read-only and safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	disseminators map[string]Disseminator
	ingesters     map[string]Ingester
}

// NewRegistry returns an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{
		disseminators: make(map[string]Disseminator),
		ingesters:     make(map[string]Ingester),
	}
}

// RegisterDisseminator binds a disseminator codec to a logical name,
// displacing any previous binding.
func (r *Registry) RegisterDisseminator(name string, d Disseminator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disseminators[name] = d
}

// RegisterIngester binds an ingester codec to a logical name, displacing
// any previous binding.
func (r *Registry) RegisterIngester(name string, i Ingester) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ingesters[name] = i
}

// Disseminator resolves the codec bound to name, or
// status.ErrNoDisseminator.
func (r *Registry) Disseminator(name string) (Disseminator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.disseminators[name]
	if !ok {
		return nil, status.ErrNoDisseminator
	}
	return d, nil
}

// Ingester resolves the codec bound to name, or status.ErrNoIngester.
func (r *Registry) Ingester(name string) (Ingester, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.ingesters[name]
	if !ok {
		return nil, status.ErrNoIngester
	}
	return i, nil
}
