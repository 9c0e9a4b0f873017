package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glslpp/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var mu sync.Mutex
	var batches [][]string
	done := make(chan struct{})

	d := watcher.NewDebouncer(20*time.Millisecond, func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()
		close(done)
	})

	d.Add("a.glsl")
	d.Add("b.glsl")
	d.Add("a.glsl")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, batches, 1)
	got := batches[0]
	sort.Strings(got)
	assert.Equal(t, []string{"a.glsl", "b.glsl"}, got)
}

func TestDebouncer_FlushIsSynchronous(t *testing.T) {
	var got []string
	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		got = append(got, paths...)
	})

	d.Add("x.glsl")
	d.Flush()

	assert.Equal(t, []string{"x.glsl"}, got)
}

func TestDebouncer_FlushEmptyIsNoop(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) { called = true })

	d.Flush()

	assert.False(t, called)
}
