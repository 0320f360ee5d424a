// SPDX-License-Identifier: EPL-2.0

// Package lsb reassembles bytes hidden in the least-significant bits of
// stereo 16-bit PCM frames.
//
// # Modes
//
// A Mode decides which channel feeds each bit and where the bit lands in the
// byte under construction (position 0 is the least-significant bit):
//
//	Mode  bits/frame  source                         position              frames/byte
//	L     1           left                           bitCount              8
//	R     1           right                          bitCount              8
//	LR    2           left, right                    2*bitCount, +1        4
//	RL    2           right, left                    2*bitCount, +1        4
//	LRA   1           left, swaps after each byte    bitCount              8
//	RLA   1           right, swaps after each byte   bitCount              8
//
// The alternating modes switch channel once per completed byte, never per
// frame.
//
// # Bit Assembly
//
// Advance is a pure function over a State value:
//
//	var st lsb.State
//	for _, f := range frames {
//	    var b byte
//	    var done bool
//	    st, b, done = lsb.Advance(st, f, lsb.ModeLRA)
//	    if done {
//	        msg = append(msg, b)
//	    }
//	}
//
// Extract, Extractor and ExtractSource wrap that loop for slices, pushed
// frames and streaming sources. Bits left in the accumulator when the input
// ends are discarded.
//
// # Output
//
// Filter keeps only ASCII letters and digits; Render writes them in the order
// the bytes were completed.
//
// # Embedding
//
// Embed is the inverse of Extract and is used to build carriers with a known
// payload:
//
//	stego, err := lsb.Embed(cover, []byte("TEST"), lsb.ModeL)
package lsb
