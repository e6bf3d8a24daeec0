package defaults

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySetGet(t *testing.T) {
	r := NewRegistry()
	src := map[string]any{"class": "form-range"}
	r.Set("range", src)
	src["class"] = "mutated"

	got := r.Get("range")
	require.NotNil(t, got)
	assert.Equal(t, "form-range", got["class"])

	got["class"] = "changed"
	assert.Equal(t, "form-range", r.Get("range")["class"])
	assert.Nil(t, r.Get("text"))
}

func TestRegistrySetEmptyRemoves(t *testing.T) {
	r := NewRegistry()
	r.Set("text", map[string]any{"a": 1})
	r.Set("text", nil)
	assert.Nil(t, r.Get("text"))
	assert.Empty(t, r.Kinds())
}

func TestRegistryAdd(t *testing.T) {
	r := NewRegistry()
	r.Add("text", map[string]any{"class": "a", "size": 10})
	r.Add("text", map[string]any{"class": "b"})

	assert.Equal(t, map[string]any{"class": "b", "size": 10}, r.Get("text"))
}

func TestRegistryKindsAndReset(t *testing.T) {
	r := NewRegistry()
	r.Set("text", map[string]any{"a": 1})
	r.Set(Wildcard, map[string]any{"b": 2})

	assert.Equal(t, []string{"*", "text"}, r.Kinds())

	r.Reset()
	assert.Empty(t, r.Kinds())
}

func TestGlobalRegistry(t *testing.T) {
	t.Cleanup(Reset)

	SetDefaults("hidden", map[string]any{"autocomplete": "off"})
	assert.Equal(t, "off", Defaults("hidden")["autocomplete"])
	assert.Same(t, global, Global())

	Reset()
	assert.Nil(t, Defaults("hidden"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			r.Add("text", map[string]any{"size": i})
		}(i)
		go func() {
			defer wg.Done()
			_ = Resolve(Layers{Kind: "text", Registry: r})
		}()
	}
	wg.Wait()
	assert.Contains(t, r.Get("text"), "size")
}
