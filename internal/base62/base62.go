// Package base62 converts non-negative integers to compact alphanumeric
// strings and back. The alphabet is 0-9, a-z, A-Z in that significance
// order, so codes stay URL-safe without escaping.
package base62

import (
	"errors"
	"slices"
	"strings"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const base = 62

// ErrInvalidCharacter is returned by Decode for any character outside the
// 62-character alphabet.
var ErrInvalidCharacter = errors.New("base62: invalid character")

// Encode converts n to its base62 representation. Encode(0) is "0".
func Encode(n uint64) string {
	if n == 0 {
		return string(alphabet[0])
	}

	res := make([]byte, 0, 11)
	for n > 0 {
		res = append(res, alphabet[n%base])
		n /= base
	}
	slices.Reverse(res)
	return string(res)
}

// Decode is the inverse of Encode.
func Decode(s string) (uint64, error) {
	var res uint64
	for _, char := range s {
		index := strings.IndexRune(alphabet, char)
		if index == -1 {
			return 0, ErrInvalidCharacter
		}
		res = res*base + uint64(index)
	}
	return res, nil
}

// IsValid reports whether s contains only alphabet characters.
func IsValid(s string) bool {
	for _, char := range s {
		if !strings.ContainsRune(alphabet, char) {
			return false
		}
	}
	return true
}
