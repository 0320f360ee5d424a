// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 2-channel 16-bit AIFF files into audio frames.
//
// Decoding goes through github.com/go-audio/aiff, which needs an
// io.ReadSeeker; other readers are buffered in memory first. Samples arrive
// big-endian on disk and are handed out as native int16 values, so their
// least significant bits are the same bits a WAV carrier would hold.
//
//	f, _ := os.Open("carrier.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//
// Errors: ErrNotAiffFile, ErrOnlyPCM16bitSupported, ErrNotStereo and
// ErrUnsupportedAiffLayout. AIFF-C (compressed) files are rejected.
package aiff
