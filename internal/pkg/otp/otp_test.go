package otp

import "testing"

func TestNumericGenerate(t *testing.T) {
	// Arrange
	gen := NewNumeric()

	// Act & Assert
	for range 1000 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != Digits {
			t.Fatalf("code %q has %d digits, want %d", code, len(code), Digits)
		}
		if code < "100000" || code > "999999" {
			t.Fatalf("code %q outside [100000, 999999]", code)
		}
	}
}

func TestNumericGenerateUniformSpread(t *testing.T) {
	// Arrange
	gen := NewNumeric()
	const draws = 5000
	var buckets [10]int

	// Act
	for range draws {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		buckets[code[len(code)-1]-'0']++
	}

	// Assert. The code range is a multiple of 10, so the last digit is uniform
	// over 0-9 and every bucket should hold roughly draws/10. The bounds sit
	// far outside normal sampling noise.
	for digit, got := range buckets {
		if got < 350 || got > 650 {
			t.Fatalf("digit %d drawn %d times out of %d, outside [350, 650]", digit, got, draws)
		}
	}
}

func TestNumericGenerateNotConstant(t *testing.T) {
	// Arrange
	gen := NewNumeric()
	seen := make(map[string]struct{})

	// Act
	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		seen[code] = struct{}{}
	}

	// Assert
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct values", len(seen))
	}
}
