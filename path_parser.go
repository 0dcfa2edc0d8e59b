package main

import (
	"strconv"

	"github.com/paulmach/orb"
)

// ParsePathData extracts the vertex sequence from an SVG path command
// string. Only the straight-line subset is interpreted: absolute and
// relative move (M/m), absolute and relative line (L/l) and close (Z/z,
// which contributes no point). Additional coordinate pairs on a move
// command are implicit line-tos, which is how traced maps usually encode
// their outlines. Unknown commands are skipped along with their arguments.
//
// The parser never fails; a malformed path simply yields fewer points and
// the caller decides whether the result is usable.
func ParsePathData(d string) orb.Ring {
	var ring orb.Ring
	var cursor orb.Point

	i := 0
	for i < len(d) {
		c := d[i]
		if !isAlpha(c) {
			i++
			continue
		}
		i++
		nums, next := scanNumbers(d, i)
		i = next

		switch c {
		case 'M':
			for n := 0; n+1 < len(nums); n += 2 {
				cursor = orb.Point{nums[n], nums[n+1]}
				ring = append(ring, cursor)
			}
		case 'm':
			for n := 0; n+1 < len(nums); n += 2 {
				cursor = orb.Point{cursor[0] + nums[n], cursor[1] + nums[n+1]}
				ring = append(ring, cursor)
			}
		case 'L':
			for n := 0; n+1 < len(nums); n += 2 {
				cursor = orb.Point{nums[n], nums[n+1]}
				ring = append(ring, cursor)
			}
		case 'l':
			for n := 0; n+1 < len(nums); n += 2 {
				cursor = orb.Point{cursor[0] + nums[n], cursor[1] + nums[n+1]}
				ring = append(ring, cursor)
			}
		case 'Z', 'z':
			// Close command, no point to extract.
		default:
			// Curves and other unsupported commands: arguments dropped.
		}
	}

	return ring
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanNumbers collects float literals starting at i, skipping whitespace and
// commas, until the next command letter. Runs like "10.5-3.25" and "-.5.5"
// split into separate numbers the way SVG path grammar expects.
func scanNumbers(s string, i int) ([]float64, int) {
	var nums []float64
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			i++
			continue
		}
		if isAlpha(c) {
			break
		}
		v, next, ok := scanFloat(s, i)
		if !ok {
			// Stray character, not part of any number.
			i++
			continue
		}
		nums = append(nums, v)
		i = next
	}
	return nums, i
}

// scanFloat reads one float literal at position i: optional sign, digits
// with at most one decimal point, optional exponent.
func scanFloat(s string, i int) (float64, int, bool) {
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, start, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, start, false
	}
	return v, i, true
}
