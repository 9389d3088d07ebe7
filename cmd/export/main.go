package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/redracer/pkg/api"
	"github.com/cbodonnell/redracer/pkg/config"
	"github.com/cbodonnell/redracer/pkg/export"
	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/cbodonnell/redracer/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	wasmPath := flag.String("wasm", "redracer.wasm", "Game binary built with GOOS=js GOARCH=wasm")
	wasmExecPath := flag.String("wasm-exec", "wasm_exec.js", "Go wasm runtime shim")
	stylesPath := flag.String("styles", "", "Stylesheet replacing the built in one")
	out := flag.String("out", "", "Write the exported HTML to this file")
	serve := flag.Bool("serve", false, "Serve the export over HTTP")
	port := flag.Int("port", 0, "Port to serve on (overrides config)")
	watch := flag.Bool("watch", false, "Rebuild when the inputs change (with -serve)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *port != 0 {
		cfg.Export.Port = *port
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", logger.Level())

	log.Info("Starting exporter version %s", version.Get())

	if *out == "" && !*serve {
		panic("Nothing to do: pass -out and/or -serve")
	}

	builder, err := export.NewBuilder(export.NewBuilderOptions{
		Title:        cfg.Export.Title,
		StylesPath:   *stylesPath,
		WasmPath:     *wasmPath,
		WasmExecPath: *wasmExecPath,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create export builder: %v", err))
	}
	if err := builder.Rebuild(); err != nil {
		panic(fmt.Sprintf("Failed to build export: %v", err))
	}

	if *out != "" {
		doc, _, err := builder.Document()
		if err != nil {
			panic(fmt.Sprintf("Failed to get export: %v", err))
		}
		if err := os.WriteFile(*out, doc, 0o644); err != nil {
			panic(fmt.Sprintf("Failed to write export: %v", err))
		}
		log.Info("Wrote %s", *out)
	}

	if !*serve {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *watch {
		watcher, err := export.NewWatcher(export.DefaultDebounce, builder.Paths()...)
		if err != nil {
			panic(fmt.Sprintf("Failed to watch export inputs: %v", err))
		}
		defer watcher.Close()
		go export.RebuildOnChange(ctx, watcher, builder)
		log.Info("Watching %v for changes", builder.Paths())
	}

	serverOpts := api.NewExportServerOptions{
		Port:         cfg.Export.Port,
		Source:       builder,
		DownloadName: cfg.Export.FileName,
	}
	tlsCertFile := os.Getenv("REDRACER_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("REDRACER_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		serverOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server, err := api.NewExportServer(serverOpts)
	if err != nil {
		panic(fmt.Sprintf("Failed to create export server: %v", err))
	}
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
