// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// Name validates a name is non-empty after trimming whitespace.
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Ref validates an image reference is present and printable.
func Ref(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("ref is required")
	}
	if strings.IndexFunc(ref, unicode.IsControl) >= 0 {
		return fmt.Errorf("ref contains control characters")
	}
	return nil
}

// Weight validates a layout weight is a finite positive number.
func Weight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("weight must be a finite number")
	}
	if w <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return nil
}

// NonNegative validates a policy adjustment is finite and not negative.
func NonNegative(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("must be a finite number")
	}
	if v < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}
