// SPDX-License-Identifier: EPL-2.0

package stegwav

import "errors"

// Every error returned by this package wraps exactly one of these, so
// callers can tell a bad invocation from a bad file.
var (
	ErrArgument = errors.New("invalid argument")
	ErrIO       = errors.New("i/o error")
	ErrFormat   = errors.New("unsupported input format")
)
