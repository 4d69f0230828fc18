package lipi

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme identifies an encoding scheme for Indic text. The zero value None
// denotes "no match".
//
// Values are ordered by declaration for indexing purposes only.
type Scheme uint8

// The 16 possible detection outcomes.
const (
	None Scheme = iota
	Devanagari
	Bengali
	Gurmukhi
	Gujarati
	Oriya
	Tamil
	Telugu
	Kannada
	Malayalam
	IAST
	Kolkata
	ITRANS
	SLP1
	Velthuis
	HarvardKyoto
	schemeCount
)

// ErrSchemeNotSupported is returned (wrapped) for scheme names outside the
// closed set of schemes.
var ErrSchemeNotSupported = errors.New("scheme is not supported")

var schemeNames = [...]string{
	None:         "",
	Devanagari:   "devanagari",
	Bengali:      "bengali",
	Gurmukhi:     "gurmukhi",
	Gujarati:     "gujarati",
	Oriya:        "oriya",
	Tamil:        "tamil",
	Telugu:       "telugu",
	Kannada:      "kannada",
	Malayalam:    "malayalam",
	IAST:         "iast",
	Kolkata:      "kolkata",
	ITRANS:       "itrans",
	SLP1:         "slp1",
	Velthuis:     "velthuis",
	HarvardKyoto: "hk",
}

// aliases are accepted by ParseScheme in addition to the canonical names.
var schemeAliases = map[string]Scheme{
	"none":          None,
	"kh":            HarvardKyoto,
	"harvardkyoto":  HarvardKyoto,
	"harvard-kyoto": HarvardKyoto,
	"odia":          Oriya,
}

// String returns the symbolic name of a scheme, e.g. "devanagari" or "hk".
// None is rendered as the empty string.
func (s Scheme) String() string {
	if s < schemeCount {
		return schemeNames[s]
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// IsBrahmic is true for the nine native scripts.
func (s Scheme) IsBrahmic() bool {
	return s >= Devanagari && s <= Malayalam
}

// IsRoman is true for the six Latin-alphabet romanizations.
func (s Scheme) IsRoman() bool {
	return s >= IAST && s <= HarvardKyoto
}

// Schemes returns all schemes except None, in declaration order.
func Schemes() []Scheme {
	all := make([]Scheme, 0, schemeCount-1)
	for s := Devanagari; s < schemeCount; s++ {
		all = append(all, s)
	}
	return all
}

// ParseScheme maps a scheme name to its Scheme. Matching is case-insensitive.
// The empty string and "none" parse as None.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if s, ok := schemeAliases[key]; ok {
		return s, nil
	}
	for s, n := range schemeNames {
		if n == key {
			return Scheme(s), nil
		}
	}
	return None, fmt.Errorf("%q: %w", name, ErrSchemeNotSupported)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if s >= schemeCount {
		return nil, fmt.Errorf("scheme %d: %w", uint8(s), ErrSchemeNotSupported)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
