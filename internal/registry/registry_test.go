package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/vbaemu/internal/value"
)

type stubUnit struct {
	name string
	ret  value.Value
}

func (s *stubUnit) Name() string { return s.name }

func (s *stubUnit) Evaluate(ctx context.Context, env *Env, args []value.Value) (value.Value, error) {
	return s.ret, nil
}

func TestRegistry_ResolveIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	r := New()
	mid := &stubUnit{name: "Mid"}
	r.Register("Mid", mid)

	for _, name := range []string{"mid", "MID", "mID", "Mid"} {
		got, ok := r.Resolve(name)
		require.True(t, ok, name)
		assert.Same(t, mid, got)
	}
	assert.Equal(t, []string{"mid"}, r.Names())
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	t.Parallel()
	r := New()
	first := &stubUnit{name: "first"}
	second := &stubUnit{name: "second"}

	r.Register("Len", first)
	r.Register("LEN", second)

	got, ok := r.Resolve("len")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_MissingNameIsNotAFault(t *testing.T) {
	t.Parallel()
	r := New()
	got, ok := r.Resolve("CreateObject")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	t.Parallel()
	r := New()
	r.Register("Shell", &stubUnit{name: "Shell", ret: value.Int(0)})

	var wg sync.WaitGroup
	numGoroutines := 100
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			u, ok := r.Resolve("SHELL")
			if !ok {
				t.Error("shell not resolved")
				return
			}
			v, err := u.Evaluate(context.Background(), &Env{}, nil)
			assert.NoError(t, err)
			assert.True(t, value.Int(0).Equal(v))
		}()
	}
	wg.Wait()
}
