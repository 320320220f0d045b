package kernel

import "strings"

// codeIDCutset holds the characters trimmed from both ends of a raw code:
// spaces, dashes, newlines and tabs.
const codeIDCutset = " -\n\t"

// CodeId is the normalized business identifier used to address motorcycles and
// delivery drivers from the outside (as opposed to the internal UUID).
//
// Normalization upper-cases the raw value and trims spaces, dashes, newlines
// and tabs from both ends. It never fails, is idempotent, and equality is
// case-insensitive over the normalized form, so CodeId(" -moto-7- ") and
// CodeId("MOTO-7") address the same record. The embedded dash survives:
// only leading and trailing cutset characters are removed.
type CodeId struct {
	id string
}

// NewCodeId normalizes raw into a CodeId. A blank raw value yields the empty
// CodeId; construction itself never fails.
func NewCodeId(raw string) CodeId {
	if strings.TrimSpace(raw) == "" {
		return CodeId{}
	}
	return CodeId{id: strings.Trim(strings.ToUpper(raw), codeIDCutset)}
}

// String returns the normalized form.
func (c CodeId) String() string {
	return c.id
}

// IsEmpty reports whether the code normalized to nothing.
func (c CodeId) IsEmpty() bool {
	return c.id == ""
}

// IsEqual compares two codes case-insensitively over their normalized forms.
func (c CodeId) IsEqual(other CodeId) bool {
	return strings.EqualFold(c.id, other.id)
}
