package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/scaletris/session"
)

type Report struct {
	// Configuration
	Config         session.Config
	Games          int
	ActionsPerTick int
	MaxTicks       int

	// Results
	Results       []GameResult
	Totals        session.Stats
	GamesOver     int
	Longest       GameResult
	TotalTime     time.Duration
	TickTime      Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds a game into the totals.
func (r *Report) Add(g GameResult) {
	r.Results = append(r.Results, g)
	if g.GameOver {
		r.GamesOver++
	}
	if r.Longest.Stats == nil || g.Stats.Ticks > r.Longest.Stats.Ticks {
		r.Longest = g
	}

	t := &r.Totals
	t.Ticks += g.Stats.Ticks
	t.Drops += g.Stats.Drops
	t.Landed += g.Stats.Landed
	t.RowsCleared += g.Stats.RowsCleared
	t.Rewards += g.Stats.Rewards
	t.Penalties += g.Stats.Penalties
	if t.Actions == nil {
		t.Actions = make([]session.ActionStats, len(g.Stats.Actions))
		for i, a := range g.Stats.Actions {
			t.Actions[i].Action = a.Action
		}
	}
	for i, a := range g.Stats.Actions {
		t.Actions[i].Attempted += a.Attempted
		t.Actions[i].Applied += a.Applied
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scaletris Stress Test Report

## Test Configuration
- **Well:** {{.Config.Height}}x{{.Config.Width}}, spawn {{.Config.SpawnSize}}x{{.Config.SpawnSize}} at ({{.Config.SpawnX}}, {{.Config.SpawnY}}), {{.Config.Colors}} colors
- **Games:** {{.Games}}
- **Random Actions per Tick:** {{.ActionsPerTick}}
- **Tick Limit per Game:** {{.MaxTicks}}

## Game Results
- **Games Ended:** {{.GamesOver}} of {{len .Results}}
- **Total Ticks:** {{.Totals.Ticks}}
- **Blocks Landed:** {{.Totals.Landed}}
- **Rows Cleared:** {{.Totals.RowsCleared}}
- **Rewards:** {{.Totals.Rewards}}
- **Penalties:** {{.Totals.Penalties}}
{{- with .Longest}}{{if .Stats}}
- **Longest Game:** {{.ID}} (seed {{.Seed}}, {{.Stats.Ticks}} ticks){{end}}{{end}}

## Actions
| Action | Attempted | Applied | Rejected |
|--------|-----------|---------|----------|
{{- range .Totals.Actions}}
| {{.Action}} | {{.Attempted}} | {{.Applied}} | {{.Rejected}} |
{{- end}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
