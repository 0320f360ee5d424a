// SPDX-License-Identifier: EPL-2.0

package stegwav

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/stegwav/formats/wav"
)

// Report describes an input file. Header and Metadata are only filled in
// for WAV input.
type Report struct {
	File       string        `yaml:"file"`
	Format     string        `yaml:"format"`
	Size       int64         `yaml:"size"`
	SampleRate int           `yaml:"sample_rate"`
	Channels   int           `yaml:"channels"`
	Duration   time.Duration `yaml:"duration,omitempty"`
	Header     *wav.Header   `yaml:"header,omitempty"`
	Metadata   *wav.Metadata `yaml:"metadata,omitempty"`
}

// Inspect builds a Report for path without consuming any audio.
func Inspect(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	rep := &Report{
		File:   path,
		Format: FormatOf(path),
		Size:   st.Size(),
	}

	if rep.Format == "wav" || rep.Format == "wave" {
		if err := inspectWAV(f, rep); err != nil {
			return nil, err
		}
		return rep, nil
	}

	dec, _ := Decoders.Get(rep.Format)
	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFormat, path, err)
	}
	defer src.Close()

	rep.SampleRate = src.SampleRate()
	rep.Channels = src.Channels()

	return rep, nil
}

func inspectWAV(f io.ReadSeeker, rep *Report) error {
	src, err := wav.NewSource(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFormat, rep.File, err)
	}

	h := src.Header()
	rep.Header = &h
	rep.SampleRate = src.SampleRate()
	rep.Channels = src.Channels()
	rep.Duration = h.Duration()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	// Tags are optional; a file the stricter decoder accepted but go-audio
	// rejects still gets a report.
	if md, err := wav.ReadMetadata(f); err == nil {
		rep.Metadata = md
	}

	return nil
}

// WriteYAML writes r as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
