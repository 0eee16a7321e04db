// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"sync"
	"testing"
)

// stubEngine is a minimal engine used to check registry identity.
type stubEngine struct {
	name string
}

func (e *stubEngine) Submit([]byte) error      { return nil }
func (e *stubEngine) Receive() (*Block, error) { return nil, ErrNoneReady }
func (e *stubEngine) Close() error             { return nil }

func factoryFor(e Engine) EngineFactory {
	return func() (Engine, error) { return e, nil }
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	engine := &stubEngine{name: "mp3"}

	registry.Register("mp3", factoryFor(engine))

	f, ok := registry.Get("mp3")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered engine")
	}

	got, err := f()
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}
	if got != engine {
		t.Error("Registry.Get() returned different engine factory")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Registry.Get() returned ok=true for non-existent engine")
	}
}

func TestRegistry_Open(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	engine := &stubEngine{name: "mp3"}
	registry.Register("mp3", factoryFor(engine))

	failure := errors.New("alloc failed")
	registry.Register("broken", func() (Engine, error) { return nil, failure })

	tests := []struct {
		name    string
		want    Engine
		wantErr error
	}{
		{name: "mp3", want: engine},
		{name: "broken", wantErr: failure},
		{name: "flac", wantErr: ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Open(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Registry.Open(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Registry.Open(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Registry.Open(%q) returned wrong engine", tt.name)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubEngine{name: "first"}
	second := &stubEngine{name: "second"}

	registry.Register("mp3", factoryFor(first))
	registry.Register("mp3", factoryFor(second))

	got, err := registry.Open("mp3")
	if err != nil {
		t.Fatalf("Registry.Open() error = %v", err)
	}
	if got != second {
		t.Error("Registry.Open() did not return the overwritten engine")
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("mp3", factoryFor(&stubEngine{}))
	registry.Register("aac", factoryFor(&stubEngine{}))

	names := registry.Names()
	if len(names) != 2 || names[0] != "aac" || names[1] != "mp3" {
		t.Errorf("Registry.Names() = %v, want [aac mp3]", names)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	engine := &stubEngine{name: "test"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("engine", factoryFor(engine))
		}()
		go func() {
			defer wg.Done()
			registry.Get("engine")
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("engine"); !ok {
		t.Error("Registry.Get() failed after concurrent access")
	}
}
