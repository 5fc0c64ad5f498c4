package replay

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/panelpop/internal/games/panel"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

// ErrMismatch is returned when a re-simulated replay ends in a different
// state than the one recorded.
var ErrMismatch = errors.New("replay: checksum mismatch")

// Result is the outcome of a re-simulation.
type Result struct {
	Frames    uint64
	Checksums []uint64
	Losses    int
	Stats     []stack.Stats // per board, at the end of the replay
}

// Simulate rebuilds the recorded match and steps it through every
// recorded frame. Progress is drawn to progress; pass io.Discard to hide it.
func Simulate(rp *Replay, progress io.Writer) (Result, error) {
	mode := panel.ModeSolo
	if rp.Header.Players == 2 {
		mode = panel.ModeVersus
	}
	if err := rp.Header.Config.Validate(); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	m, err := panel.NewMatch(mode, rp.Header.Config.ToStack(), rp.Header.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	bar := pb.New64(int64(rp.Header.Frames)).SetWriter(progress).Start()
	var res Result
	for f := uint64(0); f < rp.Header.Frames; f++ {
		for _, r := range m.Step(rp.Frame(f)) {
			if r.Loss != nil {
				res.Losses++
			}
		}
		bar.Increment()
	}
	bar.Finish()

	res.Frames = m.Frame()
	res.Checksums = m.Checksums()
	for _, s := range m.Seats() {
		res.Stats = append(res.Stats, s.Board.Stats())
	}
	return res, nil
}

// Verify re-simulates the replay and compares the final checksums with the
// recorded ones.
func Verify(rp *Replay, progress io.Writer) (Result, error) {
	res, err := Simulate(rp, progress)
	if err != nil {
		return res, err
	}
	if !slices.Equal(res.Checksums, rp.Header.Checksums) {
		return res, fmt.Errorf("%w: got %x, recorded %x", ErrMismatch, res.Checksums, rp.Header.Checksums)
	}
	return res, nil
}
