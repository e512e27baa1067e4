package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/scaletris/rules"
	"github.com/plus3/scaletris/session"
)

// player feeds random actions into a session between ticks.
type player struct {
	rng     *rand.Rand
	actions []rules.Action
	perTick int
}

func newPlayer(seed uint64, perTick int) *player {
	return &player{
		rng:     rand.New(rand.NewPCG(seed, ^seed)),
		actions: rules.Actions(),
		perTick: perTick,
	}
}

func (p *player) act(s *session.Session) {
	for range p.perTick {
		s.Apply(p.actions[p.rng.IntN(len(p.actions))])
	}
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	ID       string
	Seed     uint64
	GameOver bool
	Stats    *session.Stats
}

// playGame runs one game until it ends or maxTicks ticks have passed,
// recording the time every tick takes.
func playGame(cfg session.Config, seed uint64, perTick, maxTicks int, tickTime *Stats) (GameResult, error) {
	s, err := session.New(cfg, session.WithSeed(seed))
	if err != nil {
		return GameResult{}, err
	}
	p := newPlayer(seed, perTick)

	over := s.GameOver()
	for i := 0; !over && i < maxTicks; i++ {
		start := time.Now()
		p.act(s)
		over = s.Tick().GameOver
		tickTime.Samples = append(tickTime.Samples, time.Since(start))
	}

	return GameResult{
		ID:       s.ID().String(),
		Seed:     seed,
		GameOver: over,
		Stats:    s.Stats(),
	}, nil
}
