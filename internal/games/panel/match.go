package panel

import (
	"fmt"

	"github.com/vovakirdan/panelpop/internal/core"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

// Mode selects how many boards a match runs and where garbage goes.
type Mode int

const (
	ModeSolo   Mode = iota // one board, garbage falls back onto it
	ModeVersus             // two boards, garbage goes to the opponent
)

// Players returns the number of boards the mode runs.
func (m Mode) Players() int {
	if m == ModeVersus {
		return 2
	}
	return 1
}

func (m Mode) String() string {
	if m == ModeVersus {
		return "versus"
	}
	return "solo"
}

// Seat is one board of a match.
type Seat struct {
	ID    core.PlayerID
	Board *stack.Board
	Wins  int // opponent losses while this seat stayed alive
}

// Match steps one or two boards in lockstep and routes garbage between
// them. It has no rendering or platform state, so replays can drive it
// headless.
type Match struct {
	mode  Mode
	seats []*Seat
	frame uint64
	last  []stack.Input
}

// NewMatch creates a match whose boards all start from the same seed.
func NewMatch(mode Mode, cfg stack.Config, seed int64) (*Match, error) {
	m := &Match{mode: mode}
	for i := 0; i < mode.Players(); i++ {
		b, err := stack.NewBoard(cfg, stack.NewRandomGenerator(seed, cfg.Kinds))
		if err != nil {
			return nil, fmt.Errorf("panel: board %d: %w", i+1, err)
		}
		m.seats = append(m.seats, &Seat{ID: core.PlayerID(i + 1), Board: b})
	}
	m.last = make([]stack.Input, len(m.seats))
	return m, nil
}

// Step advances every board one frame. All boards step before any garbage
// is routed, so seat order never decides who attacks first.
func (m *Match) Step(inputs []stack.Input) []stack.StepResult {
	m.frame++
	results := make([]stack.StepResult, len(m.seats))
	for i, s := range m.seats {
		var in stack.Input
		if i < len(inputs) {
			in = inputs[i]
		}
		m.last[i] = in
		results[i] = s.Board.Step(in)
	}
	m.route(results)
	return results
}

// route hands spawned garbage to its target and credits wins.
func (m *Match) route(results []stack.StepResult) {
	for i, res := range results {
		if len(res.Garbage) > 0 {
			m.target(i).Board.QueueGarbage(res.Garbage...)
		}
		if res.Loss != nil && m.mode == ModeVersus {
			m.target(i).Wins++
		}
	}
}

func (m *Match) target(i int) *Seat {
	if m.mode == ModeVersus {
		return m.seats[1-i]
	}
	return m.seats[i]
}

// Mode returns the match mode.
func (m *Match) Mode() Mode { return m.mode }

// Seats returns the boards in player order.
func (m *Match) Seats() []*Seat { return m.seats }

// Frame returns the number of frames stepped.
func (m *Match) Frame() uint64 { return m.frame }

// LastInputs returns the inputs of the most recent frame.
func (m *Match) LastInputs() []stack.Input { return m.last }

// Checksums returns the snapshot checksum of every board.
func (m *Match) Checksums() []uint64 {
	out := make([]uint64, len(m.seats))
	for i, s := range m.seats {
		out[i] = s.Board.Snapshot().Checksum()
	}
	return out
}
