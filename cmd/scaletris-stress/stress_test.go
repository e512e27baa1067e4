package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/scaletris/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.Height = 8
	cfg.Width = 4
	cfg.SpawnX = 0
	cfg.SpawnSize = 2
	return cfg
}

func TestPlayGame(t *testing.T) {
	// Without input every block lands in the two left columns, so no row is
	// ever cleared and the stack reaches the spawn point.
	var tick Stats
	g, err := playGame(smallConfig(), 11, 0, 5000, &tick)
	require.NoError(t, err)

	assert.True(t, g.GameOver)
	assert.Equal(t, uint64(11), g.Seed)
	assert.Len(t, tick.Samples, int(g.Stats.Ticks))
	assert.Positive(t, g.Stats.Landed)
	assert.Zero(t, g.Stats.RowsCleared)
}

func TestPlayGameIsDeterministic(t *testing.T) {
	a, err := playGame(smallConfig(), 7, 3, 500, &Stats{})
	require.NoError(t, err)
	b, err := playGame(smallConfig(), 7, 3, 500, &Stats{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.GameOver, b.GameOver)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestPlayGameWithRandomInput(t *testing.T) {
	// Default well and spawn, the same as running the tool without flags.
	for seed := range uint64(100) {
		var tick Stats
		var g GameResult
		require.NotPanics(t, func() {
			var err error
			g, err = playGame(session.DefaultConfig(), seed+1, 4, 5000, &tick)
			require.NoError(t, err)
		}, "seed %d", seed+1)
		assert.Len(t, tick.Samples, int(g.Stats.Ticks))
		assert.Positive(t, g.Stats.TotalApplied(), "seed %d", seed+1)
	}
}

func TestPlayGameTickLimit(t *testing.T) {
	var tick Stats
	g, err := playGame(session.DefaultConfig(), 1, 0, 3, &tick)
	require.NoError(t, err)
	assert.False(t, g.GameOver)
	assert.Equal(t, int64(3), g.Stats.Ticks)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}

func TestReport(t *testing.T) {
	r := &Report{Config: smallConfig(), Games: 3, MaxTicks: 5000}
	for seed := range uint64(3) {
		g, err := playGame(r.Config, seed, 0, 5000, &r.TickTime)
		require.NoError(t, err)
		r.Add(g)
	}
	r.TickTime.Finalize()

	assert.Len(t, r.Results, 3)
	assert.Equal(t, 3, r.GamesOver)
	var ticks int64
	for _, g := range r.Results {
		ticks += g.Stats.Ticks
		assert.LessOrEqual(t, g.Stats.Ticks, r.Longest.Stats.Ticks)
	}
	assert.Equal(t, ticks, r.Totals.Ticks)
	require.Len(t, r.Totals.Actions, 8)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Scaletris Stress Test Report")
	assert.Contains(t, out, "**Well:** 8x4")
	assert.Contains(t, out, "| scale-up |")
	assert.Contains(t, out, r.Longest.ID)
}
