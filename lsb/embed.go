// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"fmt"
	"slices"

	"github.com/ik5/stegwav/audio"
	"github.com/ik5/stegwav/utils"
)

// Embed returns a copy of frames whose LSBs carry payload under m, laid out
// so that Extract(out, m) starts with payload. Frames past the payload and
// channels a mode does not read keep their original bits.
func Embed(frames []audio.Frame, payload []byte, m Mode) ([]audio.Frame, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}

	if c := Capacity(len(frames), m); len(payload) > c {
		return nil, fmt.Errorf("%w: %d bytes, room for %d", ErrCarrierTooSmall, len(payload), c)
	}

	out := slices.Clone(frames)
	cycles := m.Threshold() + 1

	var st State
	i := 0
	for _, b := range payload {
		for c := range cycles {
			f := &out[i]
			i++

			switch m {
			case ModeLR:
				f.Left = utils.WithLSB(f.Left, b>>(2*c))
				f.Right = utils.WithLSB(f.Right, b>>(2*c+1))
			case ModeRL:
				f.Right = utils.WithLSB(f.Right, b>>(2*c))
				f.Left = utils.WithLSB(f.Left, b>>(2*c+1))
			default:
				if st.Channel(m) == Right {
					f.Right = utils.WithLSB(f.Right, b>>c)
				} else {
					f.Left = utils.WithLSB(f.Left, b>>c)
				}
			}
		}

		if m.Alternating() {
			st.Flipped = !st.Flipped
		}
	}

	return out, nil
}
