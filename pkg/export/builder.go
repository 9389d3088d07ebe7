package export

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cbodonnell/redracer/pkg/log"
)

// Builder keeps the latest export of the files on disk.
type Builder struct {
	title        string
	styles       string
	wasmPath     string
	wasmExecPath string

	lock    sync.RWMutex
	doc     []byte
	builtAt time.Time
}

type NewBuilderOptions struct {
	// Title defaults to DefaultTitle.
	Title string
	// StylesPath optionally replaces the embedded stylesheet.
	StylesPath string
	// WasmPath is the game binary built for js/wasm.
	WasmPath string
	// WasmExecPath is the wasm_exec.js shipped with the Go toolchain.
	WasmExecPath string
}

func NewBuilder(opts NewBuilderOptions) (*Builder, error) {
	if opts.WasmPath == "" {
		return nil, fmt.Errorf("%w: no wasm path", ErrMissingAsset)
	}
	if opts.WasmExecPath == "" {
		return nil, fmt.Errorf("%w: no wasm_exec.js path", ErrMissingAsset)
	}

	b := &Builder{
		title:        opts.Title,
		wasmPath:     opts.WasmPath,
		wasmExecPath: opts.WasmExecPath,
	}
	if opts.StylesPath != "" {
		styles, err := os.ReadFile(opts.StylesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read styles: %v", err)
		}
		b.styles = string(styles)
	}
	return b, nil
}

// Paths returns the files the builder reads on every rebuild.
func (b *Builder) Paths() []string {
	return []string{b.wasmPath, b.wasmExecPath}
}

// Rebuild reads the inputs again and replaces the current document. On
// failure the previous document is kept.
func (b *Builder) Rebuild() error {
	wasm, err := readAsset(b.wasmPath)
	if err != nil {
		return err
	}
	wasmExec, err := readAsset(b.wasmExecPath)
	if err != nil {
		return err
	}

	doc, err := Build(Assets{
		Title:    b.title,
		Styles:   b.styles,
		WasmExec: wasmExec,
	}, wasm)
	if err != nil {
		return err
	}

	b.lock.Lock()
	b.doc = doc
	b.builtAt = time.Now()
	b.lock.Unlock()

	log.Info("Built export of %s (%d bytes wasm, %d bytes html)", b.wasmPath, len(wasm), len(doc))
	return nil
}

// Document returns the latest export and when it was built.
func (b *Builder) Document() ([]byte, time.Time, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.doc == nil {
		return nil, time.Time{}, fmt.Errorf("%w: nothing built yet", ErrMissingAsset)
	}
	return b.doc, b.builtAt, nil
}
