// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrSourceClosed = errors.New("source is closed")
)
