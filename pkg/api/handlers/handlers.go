package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/cbodonnell/redracer/pkg/export"
	"github.com/cbodonnell/redracer/pkg/log"
)

// DocumentSource provides the current exported document.
type DocumentSource interface {
	Document() ([]byte, time.Time, error)
}

// HandlePlay serves the document inline so it runs in the browser.
func HandlePlay(source DocumentSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeDocument(w, r, source, "")
	}
}

// HandleDownload serves the document as an attachment named name.
func HandleDownload(source DocumentSource, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeDocument(w, r, source, name)
	}
}

func HandleHealthz(source DocumentSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, _, err := source.Document(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintln(w, "not ready")
			return
		}
		fmt.Fprintln(w, "ok")
	}
}

func writeDocument(w http.ResponseWriter, r *http.Request, source DocumentSource, attachment string) {
	doc, builtAt, err := source.Document()
	if err != nil {
		if export.IsMissingAsset(err) {
			log.Warn("Export requested before it was built: %v", err)
			http.Error(w, "Export not available yet", http.StatusServiceUnavailable)
			return
		}
		log.Error("failed to get export: %v", err)
		http.Error(w, "Failed to get export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Last-Modified", builtAt.UTC().Format(http.TimeFormat))
	if attachment != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment))
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(doc); err != nil {
		log.Error("failed to write export: %v", err)
	}
}
