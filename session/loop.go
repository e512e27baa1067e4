package session

import (
	"context"
	"time"

	"github.com/plus3/scaletris/rules"
)

// Loop drives a session from a single goroutine: player actions arrive on
// Input and a ticker performs the automatic drop.
type Loop struct {
	Session *Session
	Input   <-chan rules.Action

	// Period overrides the session's tick period when positive.
	Period time.Duration

	// OnUpdate, if set, is called after every applied action and every tick
	// with a copy of the new state.
	OnUpdate func(Snapshot)
}

// NewLoop creates a loop for s reading actions from input.
func NewLoop(s *Session, input <-chan rules.Action) *Loop {
	return &Loop{Session: s, Input: input}
}

// Run processes input and ticks until the context is cancelled or the game
// ends. It returns ErrGameOver when the game ends and the context's error
// when it is cancelled. A closed Input channel stops only the input side.
func (l *Loop) Run(ctx context.Context) error {
	if l.Session.GameOver() {
		return ErrGameOver
	}

	period := l.Period
	if period <= 0 {
		period = l.Session.Config().TickPeriod()
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	input := l.Input
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			if l.Session.Apply(a) {
				l.notify()
			}
		case <-ticker.C:
			res := l.Session.Tick()
			l.notify()
			if res.GameOver {
				return ErrGameOver
			}
		}
	}
}

func (l *Loop) notify() {
	if l.OnUpdate != nil {
		l.OnUpdate(l.Session.Snapshot())
	}
}
