// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// SliceSource serves frames held in memory. It is mostly useful for tests and
// for feeding frames that were already decoded back into a pipeline.
type SliceSource struct {
	frames     []Frame
	pos        int
	sampleRate int
	closed     bool
}

func NewSliceSource(sampleRate int, frames []Frame) *SliceSource {
	return &SliceSource{
		frames:     frames,
		sampleRate: sampleRate,
	}
}

func (s *SliceSource) SampleRate() int { return s.sampleRate }
func (s *SliceSource) Channels() int   { return 2 }
func (s *SliceSource) Close() error {
	s.closed = true
	return nil
}

func (s *SliceSource) ReadFrames(dst []Frame) (int, error) {
	if s.closed {
		return 0, ErrSourceClosed
	}
	if s.pos >= len(s.frames) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copy(dst, s.frames[s.pos:])
	s.pos += n

	return n, nil
}

// ReadAll drains src and returns every frame it produced.
func ReadAll(src Source, bufSize int) ([]Frame, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	buf := make([]Frame, bufSize)
	var out []Frame

	for {
		n, err := src.ReadFrames(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
	}
}
