package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/redracer/client/game"
	"github.com/cbodonnell/redracer/pkg/config"
	"github.com/cbodonnell/redracer/pkg/game/constants"
	"github.com/cbodonnell/redracer/pkg/log"
	"github.com/cbodonnell/redracer/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	seed := flag.Int64("seed", 0, "Spawn seed, 0 seeds from the clock")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", logger.Level())

	log.Info("Starting client version %s", version.Get())

	g, err := game.NewGame(game.NewGameOptions{
		Debug: *debug || cfg.Debug,
		Seed:  *seed,

		DownloadURL: cfg.Export.DownloadURL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(int(constants.CanvasWidth*cfg.Window.Scale), int(constants.CanvasHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
