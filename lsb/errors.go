// SPDX-License-Identifier: EPL-2.0

package lsb

import "errors"

var (
	ErrInvalidMode     = errors.New("invalid mode")
	ErrCarrierTooSmall = errors.New("carrier too small for payload")
)
