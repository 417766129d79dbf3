package mbll

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// Unit is the length unit of source-detector distances.
type Unit int

const (
	Centimeter Unit = iota
	Millimeter
)

// String returns "cm" or "mm".
func (u Unit) String() string {
	switch u {
	case Centimeter:
		return "cm"
	case Millimeter:
		return "mm"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// ParseUnit parses "cm" or "mm".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm":
		return Centimeter, nil
	case "mm":
		return Millimeter, nil
	}
	return 0, fmt.Errorf("mbll: unknown unit %q: %w", s, core.ErrInvalidInput)
}

// toCentimeters returns the factor converting u to cm.
func (u Unit) toCentimeters() (float64, error) {
	switch u {
	case Centimeter:
		return 1, nil
	case Millimeter:
		return 0.1, nil
	}
	return 0, fmt.Errorf("mbll: unknown unit %v: %w", u, core.ErrInvalidInput)
}
