// SPDX-License-Identifier: EPL-2.0

package utils

// LSB returns the least-significant bit of a sample amplitude.
// Two's complement makes odd negatives report 1 as well.
func LSB(x int16) uint8 {
	return uint8(x & 1)
}

// WithLSB returns x with its least-significant bit replaced by bit&1.
func WithLSB(x int16, bit uint8) int16 {
	return (x &^ 1) | int16(bit&1)
}
