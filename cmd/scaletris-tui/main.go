package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/scaletris/level"
	"github.com/plus3/scaletris/rules"
	"github.com/plus3/scaletris/session"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	levelPath := flag.String("level", "", "Optional YAML level to start from.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one from the clock.")
	logPath := flag.String("log", "", "Write session events to this file.")
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
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		opts = append(opts, session.WithLogger(log.New(f, "", log.LstdFlags)))
	}

	s, err := session.New(cfg, opts...)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	err = run(screen, s)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

// run plays s on screen until the player quits. After game over the final
// state stays on screen until a quit key is pressed.
func run(screen tcell.Screen, s *session.Session) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redraw := func(snap session.Snapshot) {
		draw(screen, snap, s.Stats())
		screen.Show()
	}

	actions := make(chan rules.Action, 16)
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				cancel()
				return
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					return
				}
				if a, ok := keyAction(ev); ok {
					select {
					case actions <- a:
					default:
					}
				}
			case *tcell.EventResize:
				screen.Sync()
				redraw(s.Snapshot())
			}
		}
	}()

	loop := session.NewLoop(s, actions)
	loop.OnUpdate = redraw
	redraw(s.Snapshot())

	err := loop.Run(ctx)
	if errors.Is(err, session.ErrGameOver) {
		redraw(s.Snapshot())
		<-ctx.Done()
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
