// Package replay records panel matches as seed, config and per-frame input
// bytes, stores them zstd-compressed, and re-simulates them to check that
// the simulation is still deterministic.
package replay

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/games/panel/stack"
)

const (
	magic         = "PNLR"
	version uint8 = 1

	maxHeaderLen = 1 << 20
)

// ErrBadHeader is returned when a file is not a replay or its header
// cannot be decoded.
var ErrBadHeader = errors.New("replay: bad header")

// Header describes how to rebuild the recorded match.
type Header struct {
	Game      string             `yaml:"game"`
	Seed      int64              `yaml:"seed"`
	Players   int                `yaml:"players"`
	Frames    uint64             `yaml:"frames"`
	Checksums []uint64           `yaml:"checksums"` // per board, after the last frame
	Recorded  time.Time          `yaml:"recorded"`
	Config    config.PanelConfig `yaml:"config"`
}

// Replay is a decoded recording. Inputs holds Players bytes per frame.
type Replay struct {
	Header Header
	Inputs []byte
}

// Frame returns the inputs of frame f, 0-based.
func (r *Replay) Frame(f uint64) []stack.Input {
	n := uint64(r.Header.Players)
	out := make([]stack.Input, n)
	for p := uint64(0); p < n; p++ {
		out[p] = stack.InputFromBits(r.Inputs[f*n+p])
	}
	return out
}

// Recorder collects inputs of a running match.
type Recorder struct {
	hdr    Header
	inputs []byte
}

// NewRecorder starts a recording for a match with the given parameters.
func NewRecorder(game string, seed int64, cfg config.PanelConfig, players int) *Recorder {
	return &Recorder{hdr: Header{
		Game:    game,
		Seed:    seed,
		Players: players,
		Config:  cfg,
	}}
}

// Record appends one frame. Missing players are recorded as idle.
func (r *Recorder) Record(inputs []stack.Input) {
	for p := 0; p < r.hdr.Players; p++ {
		var b uint8
		if p < len(inputs) {
			b = inputs[p].Bits()
		}
		r.inputs = append(r.inputs, b)
	}
	r.hdr.Frames++
}

// Frames returns the number of recorded frames.
func (r *Recorder) Frames() uint64 { return r.hdr.Frames }

// Replay returns the recording with the final board checksums attached.
func (r *Recorder) Replay(checksums []uint64) *Replay {
	hdr := r.hdr
	hdr.Checksums = append([]uint64(nil), checksums...)
	hdr.Recorded = time.Now().UTC().Truncate(time.Second)
	return &Replay{Header: hdr, Inputs: append([]byte(nil), r.inputs...)}
}

// Save writes the replay to path.
func Save(path string, rp *Replay) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Write(f, rp); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("replay: close %s: %w", path, err)
	}
	return nil
}

// Write encodes the replay as one zstd stream: magic, version, header
// length, YAML header, input bytes.
func Write(w io.Writer, rp *Replay) error {
	hdr, err := yaml.Marshal(rp.Header)
	if err != nil {
		return fmt.Errorf("replay: encode header: %w", err)
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("replay: create zstd writer: %w", err)
	}

	var pre bytes.Buffer
	pre.WriteString(magic)
	pre.WriteByte(version)
	binary.Write(&pre, binary.LittleEndian, uint32(len(hdr)))

	for _, chunk := range [][]byte{pre.Bytes(), hdr, rp.Inputs} {
		if _, err := zw.Write(chunk); err != nil {
			zw.Close()
			return fmt.Errorf("replay: write: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("replay: close zstd writer: %w", err)
	}
	return nil
}

// Load reads a replay file.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a replay stream.
func Read(r io.Reader) (*Replay, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("replay: create zstd reader: %w", err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var pre [len(magic) + 1 + 4]byte
	if _, err := io.ReadFull(br, pre[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if string(pre[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: not a replay file", ErrBadHeader)
	}
	if v := pre[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadHeader, v)
	}
	n := binary.LittleEndian.Uint32(pre[len(magic)+1:])
	if n == 0 || n > maxHeaderLen {
		return nil, fmt.Errorf("%w: header length %d", ErrBadHeader, n)
	}

	raw := make([]byte, n)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	rp := &Replay{}
	if err := yaml.Unmarshal(raw, &rp.Header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if rp.Header.Players < 1 || rp.Header.Players > 2 {
		return nil, fmt.Errorf("%w: %d players", ErrBadHeader, rp.Header.Players)
	}

	rp.Inputs, err = io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("replay: read inputs: %w", err)
	}
	if want := rp.Header.Frames * uint64(rp.Header.Players); uint64(len(rp.Inputs)) != want {
		return nil, fmt.Errorf("replay: truncated inputs: got %d bytes, expected %d", len(rp.Inputs), want)
	}
	return rp, nil
}
