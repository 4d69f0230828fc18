package lipi

// Detect returns the encoding scheme of text, or None if no scheme matches.
//
// Control markup is removed first (see StripControl). Then the first code
// point in the Brahmic range U+0900…U+0D7F decides the native script,
// regardless of any Latin text around it. Otherwise the romanization
// signatures are tested in order of precedence:
//
//	"धर्म"      => Devanagari
//	"dharmaḥ"   => IAST
//	"dhaarmik"  => ITRANS
//	"dharma.h"  => Velthuis
//	"dharma"    => HarvardKyoto
//	""          => None
//
// Detect is a pure function; it is safe for concurrent use.
func Detect(text string) Scheme {
	return detectClean(StripControl(text))
}

func detectClean(text string) Scheme {
	if r, ok := firstBrahmic(text); ok {
		scheme := BrahmicScheme(r)
		tracer().Debugf("detect: native code point %U => %s", r, scheme)
		return scheme
	}
	mask := signatures().scan(text)
	scheme := mask.decide()
	tracer().Debugf("detect: signatures %07b => %q", mask, scheme)
	return scheme
}

// Candidates returns every scheme with evidence in text. If text contains a
// native script code point, this is the single native script Detect would
// return. Otherwise it holds each romanization whose signature occurs in the
// text; doubled vowels count for both ITRANS and Velthuis.
//
// Candidates is a diagnostic aid: Detect(text) is always a member of a
// non-empty candidate set, but the set does not rank its members.
func Candidates(text string) SchemeSet {
	return candidatesClean(StripControl(text))
}

func candidatesClean(text string) SchemeSet {
	if r, ok := firstBrahmic(text); ok {
		return NewSchemeSet(BrahmicScheme(r))
	}
	return signatures().scan(text).candidates()
}

// --- Detector --------------------------------------------------------------

// Detector is a configured scheme detector. The zero value behaves exactly
// like the package-level Detect function.
type Detector struct {
	fallback Scheme
	skipSGML bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithDefault sets the scheme reported when detection finds no match.
func WithDefault(scheme Scheme) Option {
	return func(d *Detector) {
		d.fallback = scheme
	}
}

// WithSkipSGML removes SGML/XML tags like `<span lang="sa">` before
// detection, so that tag names and attributes contribute no signal.
func WithSkipSGML(skip bool) Option {
	return func(d *Detector) {
		d.skipSGML = skip
	}
}

// NewDetector creates a Detector.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect returns the encoding scheme of text. If nothing matches, the
// detector's default scheme is returned (None unless configured).
func (d *Detector) Detect(text string) Scheme {
	scheme := detectClean(d.clean(text))
	if scheme == None && d != nil {
		return d.fallback
	}
	return scheme
}

// Candidates is like the package-level Candidates, with the detector's
// preprocessing applied.
func (d *Detector) Candidates(text string) SchemeSet {
	return candidatesClean(d.clean(text))
}

func (d *Detector) clean(text string) string {
	if d != nil && d.skipSGML {
		text = stripSGML(text)
	}
	return StripControl(text)
}
