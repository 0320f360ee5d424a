// SPDX-License-Identifier: EPL-2.0

package stegwav

import (
	"fmt"

	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/lsb"
)

// Result is the outcome of one extraction run.
type Result struct {
	// Message holds every completed byte in completion order, unfiltered.
	Message []byte
	// Printable is Message restricted to ASCII letters and digits.
	Printable []byte
	Stats     lsb.Stats
}

// Analyze reads src to the end through the bit assembly for mode m and
// returns the recovered bytes.
//
// The pipeline is:
//  1. frames are pulled from src in batches of bufferSize (4096 when <= 0)
//  2. each frame is folded into the accumulator for m
//  3. completed bytes are kept in completion order and filtered
//
// An invalid mode fails with ErrArgument before src is read. A read failure
// fails with ErrIO and no partial result.
func Analyze(src audio.Source, m lsb.Mode, bufferSize int) (*Result, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %w: %s", ErrArgument, lsb.ErrInvalidMode, m)
	}

	msg, stats, err := lsb.ExtractSource(src, m, bufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return &Result{
		Message:   msg,
		Printable: lsb.Filter(msg),
		Stats:     stats,
	}, nil
}

// Hide reads the whole of src and returns its frames with payload placed in
// their LSBs under mode m. A payload larger than the carrier fails with
// ErrArgument.
func Hide(src audio.Source, payload []byte, m lsb.Mode) ([]audio.Frame, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %w: %s", ErrArgument, lsb.ErrInvalidMode, m)
	}

	frames, err := audio.ReadAll(src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	out, err := lsb.Embed(frames, payload, m)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArgument, err)
	}

	return out, nil
}
