// SPDX-License-Identifier: EPL-2.0

package stegwav

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/formats/aiff"
	"github.com/ik5/stegwav/formats/wav"
)

// DefaultFormat is used for files whose extension has no decoder.
const DefaultFormat = "wav"

// Decoders is the registry OpenFile picks decoders from.
var Decoders = NewRegistry()

// NewRegistry returns a registry holding every decoder this module ships,
// keyed by file extension.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}

// FormatOf returns the registry key for path: its lower-cased extension
// when a decoder is registered for it, DefaultFormat otherwise.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := Decoders.Get(ext); ok {
		return ext
	}

	return DefaultFormat
}

// fileSource closes the underlying file together with the source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return srcErr
}

// OpenFile opens path and decodes it with the decoder registered for its
// extension. Closing the returned source closes the file.
func OpenFile(path string) (audio.Source, error) {
	dec, _ := Decoders.Get(FormatOf(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}
