// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/stegwav/audio"
)

// Encode writes frames as a stereo 16-bit PCM WAV through the go-audio
// encoder, which seeks back to patch the chunk sizes on close. Non-empty tags
// are stored in a LIST/INFO chunk after the data chunk, under the same keys
// ReadMetadata reports.
func Encode(ws io.WriteSeeker, sampleRate int, frames []audio.Frame, tags map[string]string) error {
	enc := gowav.NewEncoder(ws, sampleRate, pcm16Bits, stereoChannels, formatPCM)
	enc.Metadata = metadata(tags)

	data := make([]int, 0, len(frames)*stereoChannels)
	for _, f := range frames {
		data = append(data, int(f.Left), int(f.Right))
	}

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: stereoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: pcm16Bits,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
