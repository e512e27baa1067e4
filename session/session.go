// Package session owns one game: the well, the falling block and the random
// source that shapes new blocks. Every operation runs under a single lock,
// so a legality check and the mutation it guards are never interleaved with
// another transform or with the automatic drop.
package session

import (
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/scaletris/block"
	"github.com/plus3/scaletris/board"
	"github.com/plus3/scaletris/grid"
	"github.com/plus3/scaletris/level"
	"github.com/plus3/scaletris/rules"
)

// ErrGameOver is returned by Loop.Run once a spawned block cannot be placed.
var ErrGameOver = errors.New("session: game over")

// Option customizes a Session.
type Option func(*options)

type options struct {
	seed   uint64
	seeded bool
	logger *log.Logger
	preset *level.Level
}

// WithSeed fixes the random seed, overriding Config.Seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sends session events to l. Sessions are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLevel starts the session from a preset well and, if the level has
// one, a preset block instead of a freshly spawned one.
func WithLevel(l *level.Level) Option {
	return func(o *options) { o.preset = l }
}

// Session is a single game.
type Session struct {
	mu sync.Mutex

	id    uuid.UUID
	cfg   Config
	seed  uint64
	rng   *rand.Rand
	log   *log.Logger
	board *board.Board
	block *block.Block
	over  bool
	stats *counters
}

// New starts a game. Unless a level supplies one, the first block is
// spawned right away.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{seed: cfg.Seed, seeded: cfg.Seed != 0}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = uint64(time.Now().UnixNano())
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		id:    uuid.New(),
		cfg:   cfg,
		seed:  o.seed,
		rng:   rand.New(rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)),
		log:   o.logger,
		stats: newCounters(),
	}

	if o.preset != nil {
		b, err := o.preset.NewBoard()
		if err != nil {
			return nil, err
		}
		if err := cfg.checkSpawn(b.Height(), b.Width()); err != nil {
			return nil, err
		}
		blk, err := o.preset.NewBlock()
		if err != nil {
			return nil, err
		}
		s.board, s.block = b, blk
	} else {
		s.board = board.New(cfg.Height, cfg.Width)
	}
	if s.block == nil {
		s.block = s.spawn()
	}
	s.over = rules.IsGameOver(s.board, s.block)

	s.log.Printf("session %s: started %dx%d seed=%d", s.id, s.board.Height(), s.board.Width(), s.seed)
	if s.over {
		s.log.Printf("session %s: game over at start", s.id)
	}
	return s, nil
}

// ID identifies the session in logs and reports.
func (s *Session) ID() uuid.UUID { return s.id }

// Seed returns the seed the random source was created with.
func (s *Session) Seed() uint64 { return s.seed }

// Config returns the configuration the session was created with.
func (s *Session) Config() Config { return s.cfg }

func (s *Session) spawn() *block.Block {
	color := grid.Color(1 + s.rng.IntN(s.cfg.Colors))
	return block.New(s.cfg.SpawnY, s.cfg.SpawnX, s.cfg.SpawnSize, color, s.rng)
}

// Apply performs action on the falling block if the rules allow it. Scaling
// up also rewards the player by removing the fullest row; scaling down
// penalizes them by duplicating the sparsest row on top of the stack. It
// reports whether the action was applied. Nothing happens after game over.
func (s *Session) Apply(a rules.Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !a.Valid() {
		return false
	}
	incr(s.stats.attempted, a)
	if s.over || !rules.Allowed(a, s.board, s.block) {
		return false
	}

	switch a {
	case rules.MoveLeft:
		s.block.MoveLeft()
	case rules.MoveRight:
		s.block.MoveRight()
	case rules.FlipVertical:
		s.block.FlipVertical()
	case rules.FlipHorizontal:
		s.block.FlipHorizontal()
	case rules.Rotate:
		s.block.Rotate()
	case rules.Drop:
		s.block.Drop()
	case rules.ScaleUp:
		s.block = s.block.ScaleUp()
		if row, ok := s.board.Reward(); ok {
			s.stats.rewards++
			s.log.Printf("session %s: reward removed row %d", s.id, row)
		}
	case rules.ScaleDown:
		next := s.block.ScaleDown()
		if !s.inside(next) {
			return false
		}
		s.block = next
		if from, to, ok := s.board.Penalize(); ok {
			s.stats.penalties++
			s.log.Printf("session %s: penalty copied row %d to row %d", s.id, from, to)
		}
	}
	incr(s.stats.applied, a)
	return true
}

// inside reports whether every tile of blk lies on the board. Shrinking a
// block whose origin hangs past the left or top edge can pull tiles off the
// board even though the halved footprint fits.
func (s *Session) inside(blk *block.Block) bool {
	for pos := range blk.Cells() {
		if !s.board.InBounds(blk.Y()+pos.Row, blk.X()+pos.Col) {
			return false
		}
	}
	return true
}

// TickResult describes one automatic step. Either the block Dropped one
// row, or it Landed: it was consolidated, Cleared rows were removed and a
// new block spawned.
type TickResult struct {
	Dropped  bool
	Landed   bool
	Cleared  int
	GameOver bool
}

// Tick advances the game by one automatic step: the block drops if it can,
// otherwise it is consolidated into the well, full rows are cleared and a
// new block is spawned. A block without tiles lands at once. Game over is
// checked after every step.
func (s *Session) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.over {
		return TickResult{GameOver: true}
	}
	s.stats.ticks++

	var res TickResult
	if s.block.Count() > 0 && rules.CanDrop(s.board, s.block) {
		s.block.Drop()
		s.stats.drops++
		res.Dropped = true
	} else {
		s.board.Consolidate(s.block)
		res.Cleared = s.board.ClearRows()
		res.Landed = true
		s.stats.landed++
		s.stats.rowsCleared += int64(res.Cleared)
		if res.Cleared > 0 {
			s.log.Printf("session %s: cleared %d rows", s.id, res.Cleared)
		}
		s.block = s.spawn()
	}

	if rules.IsGameOver(s.board, s.block) {
		s.over = true
		s.log.Printf("session %s: game over after %d blocks", s.id, s.stats.landed)
	}
	res.GameOver = s.over
	return res
}

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over
}

// Snapshot is a copy of the game state that renderers may keep.
type Snapshot struct {
	ID       uuid.UUID
	Board    *board.Board
	Block    *block.Block
	GameOver bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:       s.id,
		Board:    s.board.Clone(),
		Block:    s.block.Clone(),
		GameOver: s.over,
	}
}

// Stats returns the counters collected so far.
func (s *Session) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.snapshot()
}
