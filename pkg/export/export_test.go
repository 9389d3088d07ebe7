package export

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWasmExec = []byte(`"use strict"; globalThis.Go = class { constructor() { this.importObject = {}; } run() {} };`)

// payloadOf extracts and decodes the embedded binary from an exported page.
func payloadOf(t *testing.T, doc []byte) []byte {
	t.Helper()
	const prefix = `const payload = "`
	s := string(doc)
	start := strings.Index(s, prefix)
	require.NotEqual(t, -1, start, "payload not found")
	s = s[start+len(prefix):]
	end := strings.Index(s, `"`)
	require.NotEqual(t, -1, end, "payload not terminated")

	encoded := strings.NewReplacer(`\u002b`, "+", `\/`, "/", `\u003d`, "=").Replace(s[:end])
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return data
}

func testWasm(n int) []byte {
	wasm := make([]byte, n)
	state := uint32(1)
	for i := range wasm {
		state = state*1664525 + 1013904223
		wasm[i] = byte(state >> 24)
	}
	return wasm
}

func TestBuild(t *testing.T) {
	wasm := testWasm(4096)
	doc, err := Build(Assets{WasmExec: testWasmExec}, wasm)
	require.NoError(t, err)

	page := string(doc)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Super Red Racer</title>")
	assert.Contains(t, page, string(testWasmExec))
	assert.Contains(t, page, "border: 4px solid #fff;")
	assert.Contains(t, page, `new DecompressionStream("gzip")`)
	assert.Equal(t, wasm, payloadOf(t, doc))
}

func TestBuild_customAssets(t *testing.T) {
	doc, err := Build(Assets{
		Title:    "<Racer & Co>",
		Styles:   "body { color: red; }",
		WasmExec: testWasmExec,
	}, []byte("\x00asm"))
	require.NoError(t, err)

	page := string(doc)
	assert.Contains(t, page, "<title>&lt;Racer &amp; Co&gt;</title>")
	assert.Contains(t, page, "body { color: red; }")
	assert.NotContains(t, page, "border: 4px solid #fff;")
	assert.Equal(t, []byte("\x00asm"), payloadOf(t, doc))
}

func TestBuild_missingAssets(t *testing.T) {
	tests := []struct {
		name     string
		wasmExec []byte
		wasm     []byte
	}{
		{name: "no wasm", wasmExec: testWasmExec},
		{name: "no wasm_exec", wasm: []byte("\x00asm")},
		{name: "nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(Assets{WasmExec: tt.wasmExec}, tt.wasm)
			require.Error(t, err)
			assert.True(t, IsMissingAsset(err))
		})
	}
}

func writeInputs(t *testing.T, dir string, wasm []byte) (string, string) {
	t.Helper()
	wasmPath := filepath.Join(dir, "game.wasm")
	execPath := filepath.Join(dir, "wasm_exec.js")
	require.NoError(t, os.WriteFile(wasmPath, wasm, 0o644))
	require.NoError(t, os.WriteFile(execPath, testWasmExec, 0o644))
	return wasmPath, execPath
}

func TestBuilder(t *testing.T) {
	dir := t.TempDir()
	wasmPath, execPath := writeInputs(t, dir, []byte("first"))

	b, err := NewBuilder(NewBuilderOptions{WasmPath: wasmPath, WasmExecPath: execPath})
	require.NoError(t, err)
	assert.Equal(t, []string{wasmPath, execPath}, b.Paths())

	_, _, err = b.Document()
	assert.True(t, IsMissingAsset(err), "nothing is built before the first rebuild")

	require.NoError(t, b.Rebuild())
	doc, builtAt, err := b.Document()
	require.NoError(t, err)
	assert.False(t, builtAt.IsZero())
	assert.Equal(t, []byte("first"), payloadOf(t, doc))

	// a broken input keeps the last good document
	require.NoError(t, os.WriteFile(wasmPath, nil, 0o644))
	err = b.Rebuild()
	assert.True(t, IsMissingAsset(err))
	doc, _, err = b.Document()
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), payloadOf(t, doc))

	require.NoError(t, os.WriteFile(wasmPath, []byte("second"), 0o644))
	require.NoError(t, b.Rebuild())
	doc, _, err = b.Document()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), payloadOf(t, doc))
}

func TestBuilder_missingFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBuilder(NewBuilderOptions{WasmExecPath: "wasm_exec.js"})
	assert.True(t, IsMissingAsset(err))

	b, err := NewBuilder(NewBuilderOptions{
		WasmPath:     filepath.Join(dir, "missing.wasm"),
		WasmExecPath: filepath.Join(dir, "missing.js"),
	})
	require.NoError(t, err)
	assert.True(t, IsMissingAsset(b.Rebuild()))
}

func TestBuilder_styles(t *testing.T) {
	dir := t.TempDir()
	wasmPath, execPath := writeInputs(t, dir, []byte("wasm"))
	stylesPath := filepath.Join(dir, "styles.css")
	require.NoError(t, os.WriteFile(stylesPath, []byte("canvas { width: 100%; }"), 0o644))

	b, err := NewBuilder(NewBuilderOptions{
		Title:        "Red Racer Dev",
		StylesPath:   stylesPath,
		WasmPath:     wasmPath,
		WasmExecPath: execPath,
	})
	require.NoError(t, err)
	require.NoError(t, b.Rebuild())

	doc, _, err := b.Document()
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<title>Red Racer Dev</title>")
	assert.Contains(t, string(doc), "canvas { width: 100%; }")
}
