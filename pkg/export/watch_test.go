package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	wasmPath, execPath := writeInputs(t, dir, []byte("v1"))

	w, err := NewWatcher(0, wasmPath, execPath)
	require.NoError(t, err)
	defer w.Close()

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(wasmPath, []byte("v2"), 0o644))

	want, err := filepath.Abs(wasmPath)
	require.NoError(t, err)
	select {
	case name := <-w.Events:
		assert.Equal(t, want, name)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestWatcher_close(t *testing.T) {
	dir := t.TempDir()
	wasmPath, _ := writeInputs(t, dir, []byte("v1"))

	w, err := NewWatcher(DefaultDebounce, wasmPath)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close(), "closing twice is a no-op")

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestRebuildOnChange(t *testing.T) {
	dir := t.TempDir()
	wasmPath, execPath := writeInputs(t, dir, []byte("v1"))

	b, err := NewBuilder(NewBuilderOptions{WasmPath: wasmPath, WasmExecPath: execPath})
	require.NoError(t, err)
	require.NoError(t, b.Rebuild())

	w, err := NewWatcher(0, b.Paths()...)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		RebuildOnChange(ctx, w, b)
		close(done)
	}()

	require.NoError(t, os.WriteFile(wasmPath, []byte("v2"), 0o644))
	assert.Eventually(t, func() bool {
		doc, _, err := b.Document()
		return err == nil && string(payloadOf(t, doc)) == "v2"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RebuildOnChange did not stop")
	}
}

func TestRebuildOnChange_waitsForQuietPeriod(t *testing.T) {
	dir := t.TempDir()
	wasmPath, execPath := writeInputs(t, dir, []byte("v1"))

	b, err := NewBuilder(NewBuilderOptions{WasmPath: wasmPath, WasmExecPath: execPath})
	require.NoError(t, err)
	require.NoError(t, b.Rebuild())

	w, err := NewWatcher(200*time.Millisecond, b.Paths()...)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go RebuildOnChange(ctx, w, b)

	// the build lands in two writes close together
	require.NoError(t, os.WriteFile(wasmPath, []byte("HALF-"), 0o644))
	time.Sleep(30 * time.Millisecond)
	f, err := os.OpenFile(wasmPath, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("COMPLETE")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Eventually(t, func() bool {
		doc, _, err := b.Document()
		return err == nil && string(payloadOf(t, doc)) == "HALF-COMPLETE"
	}, 5*time.Second, 20*time.Millisecond)

	time.Sleep(300 * time.Millisecond)
	doc, _, err := b.Document()
	require.NoError(t, err)
	assert.Equal(t, "HALF-COMPLETE", string(payloadOf(t, doc)))
}

func TestWatcher_coalescesBurst(t *testing.T) {
	dir := t.TempDir()
	wasmPath, _ := writeInputs(t, dir, []byte("v1"))

	w, err := NewWatcher(100*time.Millisecond, wasmPath)
	require.NoError(t, err)
	defer w.Close()

	for _, v := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(wasmPath, []byte(v), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}
