// dungeon-crawler plays a single-level roguelike in the terminal. Build:
//
//	go build -o dungeon-crawler .
//
// Usage:
//
//	./dungeon-crawler [--config options.yaml] [--seed 42] [--log crawler.log]
//
// Log verbosity and format come from LOG_LEVEL and LOG_FORMAT.
package main

import (
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/game"
	"dungeon-crawler/internal/logger"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML options file (defaults apply when empty)")
	seed := flag.Int64("seed", 0, "Level seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "Write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string) error {
	// The screen owns stdout, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger.Init(out)

	opts := config.Default()
	if configPath != "" {
		var err error
		if opts, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Log.WithField("seed", seed).Info("starting")

	g, err := game.New(opts, seed)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	return g.Run(screen)
}
