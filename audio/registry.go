// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sort"
	"sync"
)

// Registry for engine backends by name (e.g., "mp3").
type Registry struct {
	engines map[string]EngineFactory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]EngineFactory),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(name string, f EngineFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.engines[name] = f
}

func (r *Registry) Get(name string) (EngineFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.engines[name]
	return f, ok
}

// Open allocates a new engine from the named backend.
func (r *Registry) Open(name string) (Engine, error) {
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	e, err := f()
	if err != nil {
		return nil, fmt.Errorf("open %s engine: %w", name, err)
	}

	return e, nil
}

// Names lists registered backends in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
