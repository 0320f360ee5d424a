// SPDX-License-Identifier: EPL-2.0

package wav

import "time"

const (
	formatPCM        = 1
	canonicalFmtSize = 16
	stereoChannels   = 2
	pcm16Bits        = 16
	stereoBlockAlign = stereoChannels * pcm16Bits / 8
)

// Header is the decoded container framing of a WAV file.
type Header struct {
	RIFFSize      uint32 `yaml:"riff_size"`
	FmtSize       uint32 `yaml:"fmt_size"`
	FormatTag     uint16 `yaml:"format_tag"`
	Channels      uint16 `yaml:"channels"`
	SampleRate    uint32 `yaml:"sample_rate"`
	ByteRate      uint32 `yaml:"byte_rate"`
	BlockAlign    uint16 `yaml:"block_align"`
	BitsPerSample uint16 `yaml:"bits_per_sample"`
	DataSize      uint32 `yaml:"data_size"`
	// Frames is DataSize / BlockAlign; a trailing partial frame is not counted.
	Frames int `yaml:"frames"`
	// SkippedChunks lists the IDs of chunks found before "data" that were
	// skipped.
	SkippedChunks []string `yaml:"skipped_chunks,omitempty"`
}

// Duration is the playing time of the data chunk.
func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Frames) * time.Second / time.Duration(h.SampleRate)
}

func (h Header) validate() error {
	if h.FormatTag != formatPCM || h.BitsPerSample != pcm16Bits {
		return ErrOnlyPCM16bitSupported
	}

	if h.Channels != stereoChannels {
		return ErrNotStereo
	}

	if h.BlockAlign != stereoBlockAlign {
		return ErrUnsupportedWavLayout
	}

	return nil
}
