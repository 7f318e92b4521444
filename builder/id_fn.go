// Package: algoviz/builder
//
// id_fn.go: vertex ID schemes.

package builder

import (
	"strconv"
)

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// LetterIDFn yields A, B, …, Z, AA, AB, … (spreadsheet columns).
// Negative indexes map to "".
func LetterIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// NumericIDFn yields "0", "1", ….
func NumericIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn yields prefix0, prefix1, ….
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
