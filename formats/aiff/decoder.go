// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/stegwav/audio"
)

// aiffReader is the part of aiff.Decoder the source needs; tests mock it.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source adapts an aiff.Decoder to audio.Source.
type source struct {
	dec        aiffReader
	sampleRate int
	intBuf     *goaudio.IntBuffer
	eof        bool
	closed     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }

func (s *source) Close() error {
	s.closed = true
	return nil
}

func (s *source) ReadFrames(dst []audio.Frame) (int, error) {
	if s.closed {
		return 0, audio.ErrSourceClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if s.eof {
		return 0, io.EOF
	}

	need := len(dst) * 2
	if s.intBuf == nil || cap(s.intBuf.Data) < need {
		s.intBuf = &goaudio.IntBuffer{
			Data:           make([]int, need),
			Format:         s.dec.Format(),
			SourceBitDepth: 16,
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:need]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if err == io.EOF || n < need {
		s.eof = true
	}

	// An odd trailing sample is half a frame and is dropped.
	frames := n / 2
	for i := range frames {
		dst[i] = audio.Frame{
			Left:  int16(s.intBuf.Data[2*i]),
			Right: int16(s.intBuf.Data[2*i+1]),
		}
	}

	if frames == 0 {
		return 0, io.EOF
	}

	return frames, nil
}

// Decoder decodes 2-channel 16-bit AIFF files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	if format.NumChannels != 2 {
		return nil, ErrNotStereo
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
	}, nil
}
