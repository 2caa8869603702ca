// cmd/orbits/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-orbits/pkg/config"
	"github.com/opd-ai/go-orbits/pkg/engine"
	"github.com/opd-ai/go-orbits/pkg/logging"
	"github.com/opd-ai/go-orbits/pkg/render"
	engorender "github.com/opd-ai/go-orbits/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to the config path and exit")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'terminal'")
	mode := flag.String("mode", "versus", "Game mode for terminal renderer: 'single' or 'versus'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 1024, "Window width (Engo only)")
	height := flag.Int("height", 768, "Window height (Engo only)")
	flag.Parse()

	if *writeConfig {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			log.Fatalf("Failed to write configuration: %v", err)
		}
		log.Printf("Wrote default configuration to %s", *configPath)
		return
	}

	// Load configuration
	var cfg *config.Config

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		log.Fatalf("Invalid environment override: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewLogger()
	session := engine.NewSession(cfg, logger)

	switch *renderer {
	case "terminal":
		runTerminal(session, logger, *mode)
	case "engo":
		fallthrough
	default:
		runEngo(session, *width, *height, *fullscreen)
	}
}

// runEngo starts the windowed game.
func runEngo(session *engine.Session, width, height int, fullscreen bool) {
	scene := engorender.NewOrbitScene(session)

	opts := engo.RunOptions{
		Title:      "Orbits",
		Width:      width,
		Height:     height,
		Fullscreen: fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}

// runTerminal runs an unattended match in ASCII, mostly useful for
// eyeballing the physics without a display.
func runTerminal(session *engine.Session, logger *logging.Logger, mode string) {
	ctx := context.Background()

	gameMode := engine.ModeVersus
	if mode == "single" {
		gameMode = engine.ModeSinglePlayer
	}
	session.Start(gameMode)

	term := render.NewTerminalRenderer(os.Stdout, 100, 32, 1.0)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	frame := time.NewTicker(time.Second / 30)
	defer frame.Stop()

	last := time.Now()
	for {
		select {
		case <-sigChan:
			logger.Info(ctx, "shutting down")
			session.Quit()
			return
		case now := <-frame.C:
			elapsed := now.Sub(last).Seconds()
			last = now

			for player, in := range demoInputs(session) {
				session.SetInput(player, in)
			}
			session.Advance(elapsed)
			render.Frame(term, session.Snapshot())

			if session.State() == engine.StateRoundOver {
				if session.MatchOver() {
					logger.Info(ctx, "match over",
						"winner", int(session.RoundWinner()),
						"scores", session.Scores(),
					)
					return
				}
				session.Continue()
			}
		}
	}
}
