// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"fmt"
	"io"

	"github.com/ik5/stegwav/audio"
)

// Stats describes one extraction run.
type Stats struct {
	Mode Mode `yaml:"mode"`
	// Frames is the number of frames folded into the accumulator.
	Frames int `yaml:"frames"`
	// Bytes is the number of completed bytes.
	Bytes int `yaml:"bytes"`
	// DiscardedBits counts the trailing bits left in the accumulator when the
	// stream ended. They are dropped, never padded.
	DiscardedBits int `yaml:"discarded_bits"`
}

// Extractor accumulates frames pushed by the caller. It owns the recovered
// message; nothing is shared between extractors.
type Extractor struct {
	mode   Mode
	state  State
	msg    []byte
	frames int
}

// NewExtractor returns an Extractor for m, or ErrInvalidMode.
func NewExtractor(m Mode) (*Extractor, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}

	return &Extractor{mode: m}, nil
}

func (e *Extractor) Mode() Mode { return e.mode }

// Write folds frames in order and returns how many bytes they completed.
func (e *Extractor) Write(frames ...audio.Frame) int {
	completed := 0
	for _, f := range frames {
		var (
			b    byte
			done bool
		)
		e.state, b, done = Advance(e.state, f, e.mode)
		if done {
			e.msg = append(e.msg, b)
			completed++
		}
	}
	e.frames += len(frames)

	return completed
}

// Bytes returns the completed bytes in completion order.
func (e *Extractor) Bytes() []byte { return e.msg }

// Pending is the number of assembled bits not yet part of a completed byte.
func (e *Extractor) Pending() int {
	return e.state.Acc.BitCount * e.mode.BitsPerCycle()
}

func (e *Extractor) Stats() Stats {
	return Stats{
		Mode:          e.mode,
		Frames:        e.frames,
		Bytes:         len(e.msg),
		DiscardedBits: e.Pending(),
	}
}

// Extract runs the bit assembly over frames and returns the completed bytes.
func Extract(frames []audio.Frame, m Mode) ([]byte, error) {
	e, err := NewExtractor(m)
	if err != nil {
		return nil, err
	}
	e.msg = make([]byte, 0, Capacity(len(frames), m))
	e.Write(frames...)

	return e.Bytes(), nil
}

// ExtractSource streams src through the bit assembly, reading bufSize frames
// at a time. The source is read exactly once, in order, until io.EOF.
func ExtractSource(src audio.Source, m Mode, bufSize int) ([]byte, Stats, error) {
	e, err := NewExtractor(m)
	if err != nil {
		return nil, Stats{Mode: m}, err
	}

	if bufSize <= 0 {
		bufSize = 4096
	}
	buf := make([]audio.Frame, bufSize)

	for {
		n, err := src.ReadFrames(buf)
		if n > 0 {
			e.Write(buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, e.Stats(), fmt.Errorf("%w", err)
		}
	}

	return e.Bytes(), e.Stats(), nil
}
