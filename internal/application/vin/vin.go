// Package vin implements the ISO 3779 check-digit computation for
// 17-character Vehicle Identification Numbers.
//
// See https://en.wikipedia.org/wiki/Vehicle_identification_number#Check_digit_calculation
package vin

import "strings"

// Length is the fixed size of a VIN.
const Length = 17

// checkDigitPos is the 0-based index of the check-digit slot (9th character).
const checkDigitPos = 8

// weights holds the positional weight factors. The check-digit slot
// itself carries weight 0.
var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// transliteration maps VIN characters to their numeric values. I, O and
// Q are intentionally absent: they are not legal VIN characters.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
}

// CheckDigit computes the expected check character for v: the weighted
// transliteration sum modulo 11, with remainder 10 rendered as 'X'.
// Input is normalized to upper case; characters outside the VIN alphabet
// contribute zero, matching the permissive scoring of the original
// algorithm (alphabet enforcement is a separate concern, see Validate).
func CheckDigit(v string) byte {
	v = strings.ToUpper(v)
	sum := 0
	for i := 0; i < len(v) && i < Length; i++ {
		sum += transliteration[v[i]] * weights[i]
	}
	r := sum % 11
	if r == 10 {
		return 'X'
	}
	return byte('0' + r)
}

// Validate checks v against the three VIN invariants and returns one
// message per violated invariant, in a fixed order: length, alphabet,
// check digit. An empty slice means v is a well-formed VIN.
func Validate(v string) []string {
	var problems []string
	if len(v) != Length {
		problems = append(problems, "VIN must be exactly 17 characters")
	}
	if !alphabetOK(v) {
		problems = append(problems, "VIN must exclude invalid characters like I, O, Q.")
	}
	if len(v) == Length && !checkDigitOK(v) {
		problems = append(problems, "Invalid VIN check digit")
	}
	return problems
}

func alphabetOK(v string) bool {
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if _, ok := transliteration[c]; !ok {
			return false
		}
	}
	return true
}

func checkDigitOK(v string) bool {
	got := strings.ToUpper(v)[checkDigitPos]
	return got == CheckDigit(v)
}
