// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/utils"
)

// Accumulator is the byte under construction.
// BitCount stays in [0, threshold]; Byte only has the bits assembled so far.
type Accumulator struct {
	BitCount int
	Byte     uint8
}

// State is threaded through Advance, one frame at a time. The zero value is
// the initial state for every mode.
type State struct {
	Acc Accumulator
	// Flipped is set while an alternating mode reads from the channel
	// opposite to its start channel. It toggles once per completed byte.
	Flipped bool
}

// Channel returns the channel single-bit modes read from in this state.
func (s State) Channel(m Mode) Channel {
	ch := m.StartChannel()
	if m.Alternating() && s.Flipped {
		ch = ch.Flip()
	}
	return ch
}

// Advance folds one frame into st under mode m and returns the next state.
// When the frame completes a byte, done is true and out holds it; the
// returned state then has a cleared accumulator.
//
// m must be valid; Extract and NewExtractor reject invalid modes up front.
func Advance(st State, f audio.Frame, m Mode) (next State, out byte, done bool) {
	acc := st.Acc
	shift := uint(acc.BitCount)

	switch m {
	case ModeLR:
		acc.Byte |= utils.LSB(f.Left)<<(2*shift) | utils.LSB(f.Right)<<(2*shift+1)
	case ModeRL:
		acc.Byte |= utils.LSB(f.Right)<<(2*shift) | utils.LSB(f.Left)<<(2*shift+1)
	default:
		acc.Byte |= utils.LSB(sample(f, st.Channel(m))) << shift
	}

	if acc.BitCount == m.Threshold() {
		next = State{Flipped: st.Flipped}
		if m.Alternating() {
			next.Flipped = !st.Flipped
		}
		return next, acc.Byte, true
	}

	acc.BitCount++
	return State{Acc: acc, Flipped: st.Flipped}, 0, false
}

func sample(f audio.Frame, ch Channel) int16 {
	if ch == Right {
		return f.Right
	}
	return f.Left
}
