package scheme

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a switchable Source for tests.
type fakeSource struct {
	mu   sync.Mutex
	dark bool
}

func (f *fakeSource) Dark() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark
}

func (f *fakeSource) set(dark bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dark = dark
}

func TestWatcher_NotifiesOnChange(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, 5*time.Millisecond)

	changes := make(chan bool, 10)
	w.OnChange(func(dark bool) { changes <- dark })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	src.set(true)
	select {
	case dark := <-changes:
		assert.True(t, dark)
	case <-time.After(time.Second):
		t.Fatal("no change notification")
	}

	src.set(false)
	select {
	case dark := <-changes:
		assert.False(t, dark)
	case <-time.After(time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcher_NoNotificationWithoutChange(t *testing.T) {
	src := &fakeSource{dark: true}
	w := NewWatcher(src, time.Millisecond)

	changes := make(chan bool, 10)
	w.OnChange(func(dark bool) { changes <- dark })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	select {
	case <-changes:
		t.Fatal("unexpected notification for steady signal")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcher_Unsubscribe(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, time.Millisecond)

	changes := make(chan bool, 10)
	unsubscribe := w.OnChange(func(dark bool) { changes <- dark })
	unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	src.set(true)
	select {
	case <-changes:
		t.Fatal("unsubscribed callback fired")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatcher_MultipleSubscribers(t *testing.T) {
	src := &fakeSource{}
	w := NewWatcher(src, time.Millisecond)

	var mu sync.Mutex
	fired := map[string]bool{}
	done := make(chan struct{}, 2)
	for _, name := range []string{"first", "second"} {
		w.OnChange(func(bool) {
			mu.Lock()
			if !fired[name] {
				fired[name] = true
				done <- struct{}{}
			}
			mu.Unlock()
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	src.set(true)
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("not all subscribers notified")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, fired, 2)
}

func TestFixed(t *testing.T) {
	assert.True(t, Fixed(true).Dark())
	assert.False(t, Fixed(false).Dark())
}
