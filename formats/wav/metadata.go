// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// Metadata is what ReadMetadata learns about a WAV file beyond its sample format.
// Duration is derived from the RIFF size and byte rate, so container
// overhead makes it slightly longer than Header.Duration.
type Metadata struct {
	Duration time.Duration    `yaml:"duration"`
	Tags     map[string]string `yaml:"tags,omitempty"`
	Cues     int               `yaml:"cue_points,omitempty"`
}

// ReadMetadata reads the LIST/INFO tags and cue points of rs and rewinds it to the
// start. Files go-audio cannot read as WAV yield ErrNotWavFile.
func ReadMetadata(rs io.ReadSeeker) (*Metadata, error) {
	d := gowav.NewDecoder(rs)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}

	dur, err := d.Duration()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	d.ReadMetadata()
	if err := d.Err(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	md := &Metadata{Duration: dur}
	if d.Metadata != nil {
		md.Tags = tags(d.Metadata)
		md.Cues = len(d.Metadata.CuePoints)
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return md, nil
}

func tagFields(m *gowav.Metadata) map[string]*string {
	return map[string]*string{
		"artist":        &m.Artist,
		"comments":      &m.Comments,
		"copyright":     &m.Copyright,
		"creation_date": &m.CreationDate,
		"engineer":      &m.Engineer,
		"technician":    &m.Technician,
		"genre":         &m.Genre,
		"keywords":      &m.Keywords,
		"medium":        &m.Medium,
		"title":         &m.Title,
		"product":       &m.Product,
		"subject":       &m.Subject,
		"software":      &m.Software,
		"source":        &m.Source,
		"location":      &m.Location,
		"track":         &m.TrackNbr,
	}
}

func tags(m *gowav.Metadata) map[string]string {
	out := make(map[string]string)
	for k, v := range tagFields(m) {
		if *v != "" {
			out[k] = *v
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// metadata is the inverse of tags. Unknown keys are ignored.
func metadata(tags map[string]string) *gowav.Metadata {
	if len(tags) == 0 {
		return nil
	}

	m := &gowav.Metadata{}
	fields := tagFields(m)
	for k, v := range tags {
		if f, ok := fields[k]; ok {
			*f = v
		}
	}

	return m
}
