package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/styletree/styletree/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(&logging.Config{Level: logging.LevelError, Output: os.Stderr})
}

func TestOpString(t *testing.T) {
	testCases := []struct {
		op       Op
		expected string
	}{
		{OpCreated, "created"},
		{OpModified, "modified"},
		{OpDeleted, "deleted"},
		{OpRenamed, "renamed"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.op.String())
		})
	}
}

func TestTrackedFileChangeIsDelivered(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "app.yml")
	require.NoError(t, os.WriteFile(tracked, []byte("initial"), 0644))

	w, err := New(50*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	batches := make(chan []Event, 1)
	w.AddHandler(func(events []Event) error {
		select {
		case batches <- events:
		default:
		}
		return nil
	})

	require.NoError(t, w.Track([]string{tracked}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(tracked, []byte("changed"), 0644))

	select {
	case events := <-batches:
		require.NotEmpty(t, events)
		assert.Equal(t, tracked, events[0].Path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch delivered")
	}
}

func TestUntrackedFileChangeIsFiltered(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "tracked.yml")
	untracked := filepath.Join(dir, "untracked.yml")
	require.NoError(t, os.WriteFile(tracked, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(untracked, []byte("b"), 0644))

	w, err := New(50*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	batches := make(chan []Event, 4)
	w.AddHandler(func(events []Event) error {
		batches <- events
		return nil
	})

	require.NoError(t, w.Track([]string{tracked}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(untracked, []byte("bb"), 0644))

	select {
	case events := <-batches:
		t.Fatalf("unexpected batch for untracked file: %v", events)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRapidChangesAreDebouncedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	tracked := filepath.Join(dir, "app.yml")
	require.NoError(t, os.WriteFile(tracked, []byte("initial"), 0644))

	w, err := New(100*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	batches := make(chan []Event, 10)
	w.AddHandler(func(events []Event) error {
		batches <- events
		return nil
	})

	require.NoError(t, w.Track([]string{tracked}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(tracked, []byte{byte('a' + i)}, 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case events := <-batches:
		// One batch with one deduplicated event for the path.
		assert.Len(t, events, 1)
		assert.Equal(t, tracked, events[0].Path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch delivered")
	}
}

func TestTrackReplacesSet(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yml")
	second := filepath.Join(dir, "second.yml")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0644))

	w, err := New(50*time.Millisecond, testLogger())
	require.NoError(t, err)
	defer w.Stop()

	batches := make(chan []Event, 4)
	w.AddHandler(func(events []Event) error {
		batches <- events
		return nil
	})

	require.NoError(t, w.Track([]string{first}))
	require.NoError(t, w.Track([]string{second}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(first, []byte("aa"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("bb"), 0644))

	select {
	case events := <-batches:
		require.Len(t, events, 1)
		assert.Equal(t, second, events[0].Path)
	case <-time.After(3 * time.Second):
		t.Fatal("no change batch delivered")
	}
}
