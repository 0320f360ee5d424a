// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"

	"github.com/ik5/stegwav/audio"
)

// Source streams the stereo frames of a WAV data chunk.
type Source struct {
	r      io.Reader
	header Header
	buf    []byte
	closed bool
}

func (s *Source) SampleRate() int { return int(s.header.SampleRate) }
func (s *Source) Channels() int   { return int(s.header.Channels) }
func (s *Source) Header() Header  { return s.header }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

func (s *Source) ReadFrames(dst []audio.Frame) (int, error) {
	if s.closed {
		return 0, audio.ErrSourceClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * stereoBlockAlign
	if len(s.buf) < need {
		s.buf = make([]byte, need)
	}

	n, err := io.ReadFull(s.r, s.buf[:need])
	frames := n / stereoBlockAlign

	for i := range frames {
		b := s.buf[i*stereoBlockAlign : (i+1)*stereoBlockAlign]
		dst[i].Left = int16(binary.LittleEndian.Uint16(b[0:2]))
		dst[i].Right = int16(binary.LittleEndian.Uint16(b[2:4]))
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// A trailing partial frame is dropped.
		if frames == 0 {
			return 0, io.EOF
		}
		return frames, nil
	}

	if err != nil {
		return frames, fmt.Errorf("%w", err)
	}

	return frames, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	src, err := NewSource(r)
	if err != nil {
		return nil, err
	}

	return src, nil
}

// NewSource parses the RIFF/WAVE framing of r up to the start of the data
// chunk and returns a Source positioned on the first frame.
//
// Only 2-channel 16-bit PCM is accepted. A "fmt " chunk larger than 16 bytes
// has its extra bytes skipped, and chunks other than "fmt " met before
// "data" are skipped as well.
func NewSource(r io.Reader) (*Source, error) {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if p.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	h := Header{RIFFSize: p.Size}
	haveFmt := false

	for {
		id, size, err := p.IDnSize()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: no data chunk", ErrUnsupportedWavChunks)
			}
			return nil, fmt.Errorf("%w", err)
		}

		switch id {
		case riff.FmtID:
			if err := readFmt(r, id, size, &h); err != nil {
				return nil, err
			}
			if err := h.validate(); err != nil {
				return nil, err
			}
			haveFmt = true

		case riff.DataFormatID:
			if !haveFmt {
				return nil, fmt.Errorf("%w: data before fmt", ErrUnsupportedWavChunks)
			}

			h.DataSize = size
			h.Frames = int(size / uint32(h.BlockAlign))

			return &Source{
				r:      io.LimitReader(r, int64(size)),
				header: h,
				buf:    make([]byte, 4096),
			}, nil

		default:
			h.SkippedChunks = append(h.SkippedChunks, string(id[:]))
			if err := skip(chunk(r, id, size)); err != nil {
				return nil, err
			}
		}
	}
}

// chunk wraps the body of a chunk whose header was just read. RIFF bodies are
// word aligned, so odd sizes carry one pad byte.
func chunk(r io.Reader, id [4]byte, size uint32) *riff.Chunk {
	return &riff.Chunk{
		ID:   id,
		Size: int(size) + int(size&1),
		R:    r,
	}
}

// skip discards the unread part of ch, pad byte included. A body that ends
// early is a framing error; any other read failure is returned as is.
func skip(ch *riff.Chunk) error {
	left := int64(ch.Size - ch.Pos)
	if left <= 0 {
		return nil
	}

	if _, err := io.CopyN(io.Discard, ch, left); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %q chunk truncated at %d of %d bytes: %w",
				ErrUnsupportedWavChunks, string(ch.ID[:]), ch.Pos, ch.Size, io.ErrUnexpectedEOF)
		}
		return fmt.Errorf("%w", err)
	}

	return nil
}

// readFmt decodes the canonical 16 bytes of a "fmt " chunk field by field and
// skips whatever follows.
func readFmt(r io.Reader, id [4]byte, size uint32, h *Header) error {
	if size < canonicalFmtSize {
		return fmt.Errorf("%w: fmt chunk is %d bytes", ErrUnsupportedWavLayout, size)
	}

	ch := chunk(r, id, size)
	fields := make([]byte, canonicalFmtSize)
	if _, err := io.ReadFull(ch, fields); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	h.FmtSize = size
	h.FormatTag = binary.LittleEndian.Uint16(fields[0:2])
	h.Channels = binary.LittleEndian.Uint16(fields[2:4])
	h.SampleRate = binary.LittleEndian.Uint32(fields[4:8])
	h.ByteRate = binary.LittleEndian.Uint32(fields[8:12])
	h.BlockAlign = binary.LittleEndian.Uint16(fields[12:14])
	h.BitsPerSample = binary.LittleEndian.Uint16(fields[14:16])

	return skip(ch)
}
