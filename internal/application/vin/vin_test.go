package vin

import (
	"strings"
	"testing"
)

// VINs with known-correct check digits.
var validVINs = []string{
	"2C3KA53G38H165077", // check digit 3
	"1J4G248S4YC183476", // check digit 4
	"1ZVBP8EN0A5147685", // check digit 0
	"1FTFW1CTXDFD53689", // check digit X
}

func TestCheckDigitMatchesKnownVINs(t *testing.T) {
	for _, v := range validVINs {
		if got, want := CheckDigit(v), v[8]; got != want {
			t.Errorf("CheckDigit(%q) = %c, want %c", v, got, want)
		}
	}
}

func TestCheckDigitIsDeterministic(t *testing.T) {
	for _, v := range validVINs {
		first := CheckDigit(v)
		for i := 0; i < 100; i++ {
			if CheckDigit(v) != first {
				t.Fatalf("CheckDigit(%q) changed between calls", v)
			}
		}
	}
}

func TestCheckDigitNormalizesCase(t *testing.T) {
	for _, v := range validVINs {
		if CheckDigit(strings.ToLower(v)) != CheckDigit(v) {
			t.Errorf("CheckDigit(%q) differs from upper-case input", strings.ToLower(v))
		}
	}
}

func TestValidateAcceptsKnownVINs(t *testing.T) {
	for _, v := range validVINs {
		if problems := Validate(v); len(problems) != 0 {
			t.Errorf("Validate(%q) = %v, want no problems", v, problems)
		}
	}
}

func TestValidateRejectsMutatedCheckDigit(t *testing.T) {
	// Mutating only the check-digit slot must yield exactly the
	// check-digit error, not a length or alphabet error.
	const candidates = "0123456789X"
	for _, v := range validVINs {
		for i := 0; i < len(candidates); i++ {
			c := candidates[i]
			if c == v[8] {
				continue
			}
			mutated := v[:8] + string(c) + v[9:]
			problems := Validate(mutated)
			if len(problems) != 1 || problems[0] != "Invalid VIN check digit" {
				t.Errorf("Validate(%q) = %v, want check digit error only", mutated, problems)
			}
		}
	}
}

func TestValidateLengthAndAlphabet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "too short",
			in:   "2C3KA53G38H16507",
			want: []string{"VIN must be exactly 17 characters"},
		},
		{
			name: "too long",
			in:   "2C3KA53G38H1650777",
			want: []string{"VIN must be exactly 17 characters"},
		},
		{
			name: "forbidden character I",
			in:   "2C3KA53G38H16507I",
			want: []string{"VIN must exclude invalid characters like I, O, Q.", "Invalid VIN check digit"},
		},
		{
			name: "forbidden character O also breaks the weighted sum",
			in:   "OC3KA53G38H165077",
			want: []string{"VIN must exclude invalid characters like I, O, Q.", "Invalid VIN check digit"},
		},
		{
			name: "short and bad alphabet fire together",
			in:   "IOQ",
			want: []string{"VIN must be exactly 17 characters", "VIN must exclude invalid characters like I, O, Q."},
		},
		{
			name: "empty",
			in:   "",
			want: []string{"VIN must be exactly 17 characters"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("Validate(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("Validate(%q) = %v, want %v", tc.in, got, tc.want)
				}
			}
		})
	}
}
