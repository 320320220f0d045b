package driver

import (
	"strings"
)

// CnhCategory represents the category of a Brazilian driver's license (CNH).
// Only the categories relevant to the rental business are accepted: A covers
// motorcycles, B covers cars, and AB covers both.
type CnhCategory string

const (
	// CnhCategoryA licenses the holder to operate motorcycles.
	CnhCategoryA CnhCategory = "A"
	// CnhCategoryB licenses the holder to operate cars only.
	CnhCategoryB CnhCategory = "B"
	// CnhCategoryAB licenses the holder to operate both.
	CnhCategoryAB CnhCategory = "AB"
)

// NewCnhCategory normalizes a raw category string by trimming whitespace and
// upper-casing it. The result is not necessarily valid; use IsValid.
func NewCnhCategory(raw string) CnhCategory {
	return CnhCategory(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsValid reports whether the category is one of A, B or AB.
func (c CnhCategory) IsValid() bool {
	switch c {
	case CnhCategoryA, CnhCategoryB, CnhCategoryAB:
		return true
	default:
		return false
	}
}

// AllowsMotorcycle reports whether the category licenses motorcycle
// operation, that is, whether it includes the A qualification.
func (c CnhCategory) AllowsMotorcycle() bool {
	return strings.ContainsRune(string(c), 'A')
}

// String returns the category letters.
func (c CnhCategory) String() string {
	return string(c)
}
