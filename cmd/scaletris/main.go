package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	debugui_ebiten "github.com/plus3/scaletris/debugui/ebiten"
	"github.com/plus3/scaletris/level"
	"github.com/plus3/scaletris/session"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	levelPath := flag.String("level", "", "Optional YAML level to start from.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock.")
	cellSize := flag.Int("cell", 20, "Size of a well cell in pixels.")
	debug := flag.Bool("debug", false, "Show the ImGui session inspector.")
	verbose := flag.Bool("v", false, "Log session events to stderr.")
	flag.Parse()

	cfg := session.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = session.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var opts []session.Option
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	if *levelPath != "" {
		l, err := level.Load(*levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		opts = append(opts, session.WithLevel(l))
	}
	if *verbose {
		opts = append(opts, session.WithLogger(log.New(os.Stderr, "", log.LstdFlags)))
	}

	s, err := session.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	title := "Scaletris " + s.ID().String()[:8]

	var overlay *debugui_ebiten.Overlay
	if *debug {
		overlay = debugui_ebiten.NewOverlay(title, 1280, 720)
	}

	game, err := NewGame(s, *cellSize, overlay)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	if overlay == nil {
		ebiten.SetWindowSize(game.WindowSize())
		ebiten.SetWindowTitle(title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("Session %s finished after %d blocks.", s.ID(), s.Stats().Landed)
}
