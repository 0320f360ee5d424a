// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/stegwav/audio"
)

const headerSize = 44

// WriteWAV16 writes a canonical 44-byte-header stereo 16-bit PCM WAV at
// sampleRate. It needs only an io.Writer; see Encode for an io.WriteSeeker.
func WriteWAV16(w io.Writer, sampleRate int, frames []audio.Frame) error {
	byteRate := uint32(sampleRate) * stereoBlockAlign
	dataSize := uint32(len(frames) * stereoBlockAlign)
	riffSize := 36 + dataSize

	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], canonicalFmtSize)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], stereoChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], stereoBlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], pcm16Bits)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(frames) == 0 {
		return nil
	}

	const chunkFrames = 2048 // 8KB per write
	buf := make([]byte, min(len(frames), chunkFrames)*stereoBlockAlign)

	for i := 0; i < len(frames); i += chunkFrames {
		end := min(i+chunkFrames, len(frames))
		chunk := frames[i:end]
		buf = buf[:len(chunk)*stereoBlockAlign]

		for j, f := range chunk {
			binary.LittleEndian.PutUint16(buf[j*4:j*4+2], uint16(f.Left))
			binary.LittleEndian.PutUint16(buf[j*4+2:j*4+4], uint16(f.Right))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
