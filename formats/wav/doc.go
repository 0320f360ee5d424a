// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes stereo 16-bit PCM WAV files.
//
// # Decoding
//
// NewSource walks the RIFF chunk list of any io.Reader with the
// github.com/go-audio/riff parser and stops at the "data" chunk:
//
//	f, _ := os.Open("carrier.wav")
//	src, err := wav.NewSource(f)
//	if err != nil {
//	    // ErrNotWavFile, ErrNotStereo, ...
//	}
//	fmt.Println(src.Header().Frames)
//
//	buf := make([]audio.Frame, 4096)
//	n, err := src.ReadFrames(buf)
//
// The "fmt " chunk is decoded field by field. A chunk longer than the
// canonical 16 bytes has its extension skipped, and any chunk other than
// "fmt " that appears before "data" (LIST, fact, bext, ...) is skipped with
// its pad byte. Reads are limited to the declared data size, so chunks that
// follow the samples never reach the caller. A trailing partial frame is
// dropped. A skipped chunk whose body runs past the end of the input fails
// with ErrUnsupportedWavChunks wrapping io.ErrUnexpectedEOF.
//
// Only uncompressed PCM (format tag 1) with two channels, 16 bits per sample
// and a block align of 4 is accepted.
//
// # Encoding
//
// WriteWAV16 writes the canonical 44-byte header and frames to a plain
// io.Writer. Encode goes through github.com/go-audio/wav and needs an
// io.WriteSeeker, in exchange for optional LIST/INFO tags.
//
// # Metadata
//
// ReadMetadata reports the duration, INFO tags and cue point count of a seekable
// file using the go-audio/wav decoder, then rewinds it.
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE signature
//   - ErrOnlyPCM16bitSupported: compressed audio or a depth other than 16
//   - ErrNotStereo: channel count other than 2
//   - ErrUnsupportedWavLayout: short "fmt " chunk or unexpected block align
//   - ErrUnsupportedWavChunks: no "fmt " before "data", or no "data" at all
package wav
