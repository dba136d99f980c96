package domain

import "golang.org/x/text/unicode/norm"

// Form selects the target Unicode normalization form for filenames. NFC and
// NFD are canonical and losslessly interconvertible representations of the
// same visual text.
type Form uint8

const (
	// FormNFC is the composed form most platforms expect.
	FormNFC Form = iota
	// FormNFD is the decomposed form macOS filesystems store.
	FormNFD
)

func (f Form) norm() norm.Form {
	if f == FormNFD {
		return norm.NFD
	}
	return norm.NFC
}

// Apply returns s rewritten in the target form.
func (f Form) Apply(s string) string {
	return f.norm().String(s)
}

// IsNormal reports whether s already satisfies the target form.
func (f Form) IsNormal(s string) bool {
	return f.norm().IsNormalString(s)
}

// String returns the form's display name.
func (f Form) String() string {
	if f == FormNFD {
		return "NFD"
	}
	return "NFC"
}

// Transition returns the conversion label used in rename logs.
func (f Form) Transition() string {
	if f == FormNFD {
		return "NFC→NFD"
	}
	return "NFD→NFC"
}
