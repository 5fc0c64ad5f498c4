package storage

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates stored sessions of one game.
type Summary struct {
	Sessions    int
	MeanScore   float64
	StdDevScore float64
	MedianScore float64
	MeanChain   float64
	BestChain   int
	MaxCombo    int
	TotalFrames uint64
}

// Summarize computes the summary over every stored session of gameID.
func (s *Store) Summarize(gameID string) (Summary, error) {
	entries, err := s.RecentSessions(gameID, 0)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: summarize %s: %w", gameID, err)
	}
	return Summarize(entries), nil
}

// Summarize computes the summary of the given sessions.
func Summarize(entries []SessionEntry) Summary {
	sum := Summary{Sessions: len(entries)}
	if len(entries) == 0 {
		return sum
	}

	scores := make([]float64, len(entries))
	chains := make([]float64, len(entries))
	for i, e := range entries {
		scores[i] = float64(e.Score)
		chains[i] = float64(e.HighestChain)
		sum.BestChain = max(sum.BestChain, e.HighestChain)
		sum.MaxCombo = max(sum.MaxCombo, e.MaxCombo)
		sum.TotalFrames += e.Frames
	}

	sum.MeanScore, sum.StdDevScore = stat.MeanStdDev(scores, nil)
	if math.IsNaN(sum.StdDevScore) {
		sum.StdDevScore = 0
	}
	sum.MeanChain = stat.Mean(chains, nil)

	sorted := append([]float64(nil), scores...)
	slices.Sort(sorted)
	sum.MedianScore = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return sum
}
