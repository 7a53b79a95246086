// Package natsort provides natural (numeric-aware) string ordering, the
// order emulators apply to mod directories: "2_armor" sorts before
// "10_weapons" even though plain lexicographic order disagrees.
package natsort

import (
	"sort"
	"strings"
)

// Compare returns -1, 0 or 1 comparing a and b in natural order. Runs of
// digits compare by numeric value, everything else byte-wise.
func Compare(a, b string) int {
	for a != "" && b != "" {
		aChunk, aNum, aRest := chunk(a)
		bChunk, bNum, bRest := chunk(b)

		switch {
		case aNum && bNum:
			if c := compareNumeric(aChunk, bChunk); c != 0 {
				return c
			}
		case aChunk != bChunk:
			if aChunk < bChunk {
				return -1
			}

			return 1
		}

		a, b = aRest, bRest
	}

	switch {
	case a == b:
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// Less reports whether a orders before b naturally.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts names in place in natural order.
func Sort(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return Less(names[i], names[j])
	})
}

// chunk splits off the leading run of digits or non-digits.
func chunk(s string) (head string, numeric bool, rest string) {
	if s == "" {
		return "", false, ""
	}

	numeric = isDigit(s[0])
	end := 1

	for end < len(s) && isDigit(s[end]) == numeric {
		end++
	}

	return s[:end], numeric, s[end:]
}

// compareNumeric compares two digit runs by value. Leading zeros are
// ignored for magnitude, so the strings are compared by trimmed length
// first and byte-wise second.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
