// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"

	"github.com/ik5/stegwav/audio"
)

// MockSource is a test helper that generates stereo frames for testing.
type MockSource struct {
	sampleRate  int
	totalFrames int
	generated   int
	closed      bool
	waveform    func(frame int) audio.Frame
}

// NewMockSource creates a new mock audio source.
// totalFrames is the number of frames to generate.
// waveform returns the frame for a given frame index.
func NewMockSource(sampleRate, totalFrames int, waveform func(frame int) audio.Frame) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, totalFrames, func(int) audio.Frame {
		return audio.Frame{}
	})
}

// NewCounterSource creates a mock source whose left channel counts up from
// zero and whose right channel counts down.
func NewCounterSource(sampleRate, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, totalFrames, func(i int) audio.Frame {
		return audio.Frame{Left: int16(i), Right: int16(-i)}
	})
}

// NewBitSource creates a mock source whose LSBs follow the given bit
// patterns. left[i] and right[i] set the LSB of frame i; the upper bits carry
// a fixed, noisy-looking amplitude so tests do not rely on zero samples.
func NewBitSource(sampleRate int, left, right []uint8) *MockSource {
	total := max(len(left), len(right))
	return NewMockSource(sampleRate, total, func(i int) audio.Frame {
		var f audio.Frame
		f.Left = int16(((i*37)%2000 - 1000) &^ 1)
		f.Right = int16(((i*53)%3000 - 1500) &^ 1)
		if i < len(left) {
			f.Left |= int16(left[i] & 1)
		}
		if i < len(right) {
			f.Right |= int16(right[i] & 1)
		}
		return f
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return 2 }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst []audio.Frame) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	n := min(len(dst), m.totalFrames-m.generated)
	for i := range n {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.totalFrames {
		return n, io.EOF
	}

	return n, nil
}
