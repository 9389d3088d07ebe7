// Package export packs the wasm build of the game into one standalone HTML
// document that can be opened offline or downloaded.
package export

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/klauspost/compress/gzip"
)

// DefaultTitle is the page title of an exported document.
const DefaultTitle = "Super Red Racer"

var (
	//go:embed page.html.tmpl
	pageTemplate string
	//go:embed styles.css
	defaultStyles string
)

var page = template.Must(template.New("page").Parse(pageTemplate))

// ErrMissingAsset is returned when an input needed for the export is
// absent or empty.
var ErrMissingAsset = errors.New("missing asset")

func IsMissingAsset(err error) bool {
	return errors.Is(err, ErrMissingAsset)
}

// Assets are the static inputs of an export besides the game binary.
type Assets struct {
	// Title is the page title. Defaults to DefaultTitle.
	Title string
	// Styles is inlined into the page. Defaults to the embedded stylesheet.
	Styles string
	// WasmExec is the Go wasm runtime shim (wasm_exec.js). Required.
	WasmExec []byte
}

type pageData struct {
	Title    string
	Styles   template.CSS
	WasmExec template.JS
	Wasm     template.JSStr
}

// Build returns a standalone HTML document that boots wasm in the browser.
// The binary is gzip compressed and base64 encoded into the page.
func Build(assets Assets, wasm []byte) ([]byte, error) {
	if len(wasm) == 0 {
		return nil, fmt.Errorf("%w: wasm binary is empty", ErrMissingAsset)
	}
	if len(assets.WasmExec) == 0 {
		return nil, fmt.Errorf("%w: wasm_exec.js is empty", ErrMissingAsset)
	}

	title := assets.Title
	if title == "" {
		title = DefaultTitle
	}
	styles := assets.Styles
	if styles == "" {
		styles = defaultStyles
	}

	compressed, err := compress(wasm)
	if err != nil {
		return nil, fmt.Errorf("failed to compress wasm: %v", err)
	}

	buf := &bytes.Buffer{}
	err = page.Execute(buf, pageData{
		Title:    title,
		Styles:   template.CSS(styles),
		WasmExec: template.JS(assets.WasmExec),
		Wasm:     template.JSStr(base64.StdEncoding.EncodeToString(compressed)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render page: %v", err)
	}
	return buf.Bytes(), nil
}

func compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := gzip.NewWriterLevel(buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readAsset reads a required input file. A missing or empty file is an
// ErrMissingAsset.
func readAsset(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingAsset, path)
	}
	return data, nil
}
