// SPDX-License-Identifier: EPL-2.0

package lsb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/stegwav/utils"
)

// Filter keeps the alphanumeric bytes of msg, in order.
func Filter(msg []byte) []byte {
	out := make([]byte, 0, len(msg))
	for _, b := range msg {
		if utils.IsAlnum(b) {
			out = append(out, b)
		}
	}

	return out
}

// Render writes the alphanumeric bytes of msg to w in completion order.
// A non-empty delim is written after every byte, which is handy when
// eyeballing output from a wrong mode.
func Render(w io.Writer, msg []byte, delim string) (int, error) {
	kept := Filter(msg)

	if delim != "" {
		var buf bytes.Buffer
		buf.Grow(len(kept) * (1 + len(delim)))
		for _, b := range kept {
			buf.WriteByte(b)
			buf.WriteString(delim)
		}
		kept = buf.Bytes()
	}

	n, err := w.Write(kept)
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}
