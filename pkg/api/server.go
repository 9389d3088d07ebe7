package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/redracer/pkg/api/handlers"
	"github.com/cbodonnell/redracer/pkg/api/middleware"
	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

// DefaultDownloadName is the attachment name offered by /download.
const DefaultDownloadName = "SuperRedRacer.html"

type ExportServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewExportServerOptions struct {
	Port int
	TLS  *TLSConfig
	// Source provides the exported document. Required.
	Source handlers.DocumentSource
	// DownloadName defaults to DefaultDownloadName.
	DownloadName string
}

// NewExportServer creates a new http.Server serving the exported game
func NewExportServer(opts NewExportServerOptions) (*ExportServer, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("document source is required")
	}
	downloadName := opts.DownloadName
	if downloadName == "" {
		downloadName = DefaultDownloadName
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts.Source, downloadName),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &ExportServer{
		server: server,
		tls:    opts.TLS,
	}, nil
}

// NewRouter returns the export routes wrapped with request logging and
// gzip compression.
func NewRouter(source handlers.DocumentSource, downloadName string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	r.HandleFunc("/", handlers.HandlePlay(source)).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/download", handlers.HandleDownload(source, downloadName)).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", handlers.HandleHealthz(source)).Methods(http.MethodGet)
	return gzhttp.GzipHandler(r)
}

// Start starts the ExportServer
func (s *ExportServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("Export server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("Export server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Export server closed")
			return
		}
		log.Error("Export server error: %v", err)
	}
}

// Stop stops the ExportServer
func (s *ExportServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
