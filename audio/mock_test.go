package audio

import "io"

// mockSource is a test helper that generates stereo frames.
type mockSource struct {
	sampleRate  int
	totalFrames int
	generated   int
	waveform    func(frame int) Frame
}

func newMockSource(sampleRate, totalFrames int, waveform func(frame int) Frame) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// newSilentSource creates a mock source that generates silence (all zeros).
func newSilentSource(sampleRate, totalFrames int) *mockSource {
	return newMockSource(sampleRate, totalFrames, func(int) Frame {
		return Frame{}
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return 2 }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadFrames(dst []Frame) (int, error) {
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
