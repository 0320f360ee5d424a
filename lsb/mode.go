// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"fmt"
	"strings"
)

// Mode selects which channel(s) feed bits into the byte under construction
// and in which order.
type Mode uint8

const (
	// ModeL takes one bit per frame from the left channel.
	ModeL Mode = iota + 1
	// ModeR takes one bit per frame from the right channel.
	ModeR
	// ModeLR takes two bits per frame, left then right.
	ModeLR
	// ModeRL takes two bits per frame, right then left.
	ModeRL
	// ModeLRA takes one bit per frame, starting on the left channel and
	// switching channel after every completed byte.
	ModeLRA
	// ModeRLA is ModeLRA starting on the right channel.
	ModeRLA
)

var modeNames = [...]string{
	ModeL:   "L",
	ModeR:   "R",
	ModeLR:  "LR",
	ModeRL:  "RL",
	ModeLRA: "LRA",
	ModeRLA: "RLA",
}

// Modes returns every valid mode in table order.
func Modes() []Mode {
	return []Mode{ModeL, ModeR, ModeLR, ModeRL, ModeLRA, ModeRLA}
}

// ParseMode maps a mode name to its Mode. Surrounding whitespace is ignored
// and the comparison is done on the upper-cased input, so "lra" and "LRA"
// are the same mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, m := range Modes() {
		if modeNames[m] == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m Mode) Valid() bool { return m >= ModeL && m <= ModeRLA }

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
	return modeNames[m]
}

// BitsPerCycle is the number of bits one frame contributes.
func (m Mode) BitsPerCycle() int {
	switch m {
	case ModeLR, ModeRL:
		return 2
	case ModeL, ModeR, ModeLRA, ModeRLA:
		return 1
	}
	return 0
}

// Threshold is the accumulator bit count at which the byte is complete:
// 7 for one bit per cycle, 3 for two.
func (m Mode) Threshold() int {
	if m.BitsPerCycle() == 2 {
		return 3
	}
	return 7
}

// Alternating reports whether the mode switches channel at byte boundaries.
func (m Mode) Alternating() bool { return m == ModeLRA || m == ModeRLA }

// StartChannel is the channel that supplies the first bit of the stream.
func (m Mode) StartChannel() Channel {
	switch m {
	case ModeR, ModeRL, ModeRLA:
		return Right
	}
	return Left
}

func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, m)
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}

// Capacity returns how many whole bytes n frames carry under m.
func Capacity(n int, m Mode) int {
	if n <= 0 {
		return 0
	}
	return n * m.BitsPerCycle() / 8
}

// Channel identifies one side of a stereo frame.
type Channel uint8

const (
	Left Channel = iota
	Right
)

func (c Channel) Flip() Channel { return c ^ 1 }

func (c Channel) String() string {
	if c == Right {
		return "right"
	}
	return "left"
}
