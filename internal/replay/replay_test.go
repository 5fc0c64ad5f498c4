package replay

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/games/panel"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

// record plays a match with random inputs and returns its recording.
func record(t *testing.T, mode panel.Mode, seed int64, frames int) *Replay {
	t.Helper()
	cfg := config.DefaultPanelConfig()
	m, err := panel.NewMatch(mode, cfg.ToStack(), seed)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	rec := NewRecorder("panel", seed, cfg, mode.Players())

	r := rand.New(rand.NewPCG(uint64(seed), 1))
	in := make([]stack.Input, mode.Players())
	for f := 0; f < frames; f++ {
		for p := range in {
			in[p] = stack.InputFromBits(uint8(r.IntN(32)))
		}
		m.Step(in)
		rec.Record(m.LastInputs())
	}
	if rec.Frames() != uint64(frames) {
		t.Fatalf("recorded %d frames, expected %d", rec.Frames(), frames)
	}
	return rec.Replay(m.Checksums())
}

func TestSaveLoadVerify(t *testing.T) {
	tests := []struct {
		name string
		mode panel.Mode
	}{
		{"solo", panel.ModeSolo},
		{"versus", panel.ModeVersus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rp := record(t, tc.mode, 77, 900)
			path := filepath.Join(t.TempDir(), "match.pnlr")
			if err := Save(path, rp); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Header.Frames != 900 || got.Header.Players != tc.mode.Players() {
				t.Errorf("header = %+v", got.Header)
			}
			if !bytes.Equal(got.Inputs, rp.Inputs) {
				t.Error("inputs changed across save/load")
			}

			res, err := Verify(got, io.Discard)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if res.Frames != 900 {
				t.Errorf("frames = %d, expected 900", res.Frames)
			}
		})
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	rp := record(t, panel.ModeSolo, 5, 600)
	for i := range rp.Inputs {
		rp.Inputs[i] ^= 0x10 // flip every swap
	}
	_, err := Verify(rp, io.Discard)
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("got %v, expected ErrMismatch", err)
	}
}

func TestReadRejectsBadInput(t *testing.T) {
	compress := func(b []byte) []byte {
		var buf bytes.Buffer
		zw, _ := zstd.NewWriter(&buf)
		zw.Write(b)
		zw.Close()
		return buf.Bytes()
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"wrong magic", compress([]byte("NOPE\x01\x00\x00\x00\x00"))},
		{"wrong version", compress([]byte("PNLR\x09\x04\x00\x00\x00abcd"))},
		{"short", compress([]byte("PN"))},
		{"huge header", compress([]byte("PNLR\x01\xff\xff\xff\x7f"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(bytes.NewReader(tc.data))
			if !errors.Is(err, ErrBadHeader) {
				t.Errorf("got %v, expected ErrBadHeader", err)
			}
		})
	}
}

func TestReplayFrameDecodesBits(t *testing.T) {
	rec := NewRecorder("panel_vs", 1, config.DefaultPanelConfig(), 2)
	rec.Record([]stack.Input{{Up: true}, {Swap: true, Raise: true}})
	rec.Record([]stack.Input{{Left: true}}) // P2 missing

	rp := rec.Replay(nil)
	got := rp.Frame(0)
	if got[0] != (stack.Input{Up: true}) || got[1] != (stack.Input{Swap: true, Raise: true}) {
		t.Errorf("frame 0 = %+v", got)
	}
	if got := rp.Frame(1)[1]; got != (stack.Input{}) {
		t.Errorf("frame 1 P2 = %+v, expected idle", got)
	}
}
