// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"testing"

	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/internal/audiotest"
)

// bitFrames builds frames whose LSBs follow left and right.
func bitFrames(t testing.TB, left, right []uint8) []audio.Frame {
	t.Helper()

	frames, err := audio.ReadAll(audiotest.NewBitSource(44100, left, right), 0)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return frames
}

// bitsOf returns the bits of msg, least-significant bit of each byte first.
func bitsOf(msg string) []uint8 {
	bits := make([]uint8, 0, len(msg)*8)
	for i := range len(msg) {
		for j := range 8 {
			bits = append(bits, (msg[i]>>j)&1)
		}
	}

	return bits
}

// lcgBits returns n reproducible pseudo-random bits.
func lcgBits(n int, seed uint32) []uint8 {
	bits := make([]uint8, n)
	x := seed
	for i := range bits {
		x = x*1664525 + 1013904223
		bits[i] = uint8(x >> 31)
	}

	return bits
}

func complement(bits []uint8) []uint8 {
	out := make([]uint8, len(bits))
	for i, b := range bits {
		out[i] = b ^ 1
	}

	return out
}
