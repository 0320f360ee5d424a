// SPDX-License-Identifier: EPL-2.0

package utils

// IsAlnum reports whether b is an ASCII letter or digit (C locale isalnum).
func IsAlnum(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= 'a' && b <= 'z':
		return true
	}

	return false
}
