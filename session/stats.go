package session

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/scaletris/rules"
)

// Stats summarizes what happened during a session.
type Stats struct {
	Ticks       int64
	Drops       int64
	Landed      int64
	RowsCleared int64
	Rewards     int64
	Penalties   int64
	Actions     []ActionStats
}

// ActionStats counts the requests for one action and how many of them were
// legal.
type ActionStats struct {
	Action    rules.Action
	Attempted int64
	Applied   int64
}

// Rejected returns the number of requests refused by the rules.
func (a ActionStats) Rejected() int64 { return a.Attempted - a.Applied }

// TotalApplied returns the number of applied actions of every kind.
func (s *Stats) TotalApplied() int64 {
	var n int64
	for _, a := range s.Actions {
		n += a.Applied
	}
	return n
}

type counters struct {
	ticks, drops, landed int64
	rowsCleared          int64
	rewards, penalties   int64
	attempted, applied   *intmap.Map[rules.Action, int64]
}

func newCounters() *counters {
	return &counters{
		attempted: intmap.New[rules.Action, int64](8),
		applied:   intmap.New[rules.Action, int64](8),
	}
}

func incr(m *intmap.Map[rules.Action, int64], a rules.Action) {
	n, _ := m.Get(a)
	m.Put(a, n+1)
}

func (c *counters) snapshot() *Stats {
	stats := &Stats{
		Ticks:       c.ticks,
		Drops:       c.drops,
		Landed:      c.landed,
		RowsCleared: c.rowsCleared,
		Rewards:     c.rewards,
		Penalties:   c.penalties,
		Actions:     make([]ActionStats, 0, c.attempted.Len()),
	}
	for _, a := range rules.Actions() {
		attempted, _ := c.attempted.Get(a)
		applied, _ := c.applied.Get(a)
		stats.Actions = append(stats.Actions, ActionStats{
			Action:    a,
			Attempted: attempted,
			Applied:   applied,
		})
	}
	return stats
}
