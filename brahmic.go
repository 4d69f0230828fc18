package lipi

import "sort"

// brahmicRange is a contiguous interval of code points belonging to the
// Unicode block of one native script.
type brahmicRange struct {
	lo, hi rune
	scheme Scheme
}

const (
	brahmicLow  rune = 0x0900
	brahmicHigh rune = 0x0D7F
)

// brahmicRanges tiles U+0900…U+0D7F with the nine Indic blocks of 0x80
// code points each. Sorted by lo.
var brahmicRanges = [...]brahmicRange{
	{0x0900, 0x097F, Devanagari},
	{0x0980, 0x09FF, Bengali},
	{0x0A00, 0x0A7F, Gurmukhi},
	{0x0A80, 0x0AFF, Gujarati},
	{0x0B00, 0x0B7F, Oriya},
	{0x0B80, 0x0BFF, Tamil},
	{0x0C00, 0x0C7F, Telugu},
	{0x0C80, 0x0CFF, Kannada},
	{0x0D00, 0x0D7F, Malayalam},
}

// BrahmicScheme returns the native script whose Unicode block contains r,
// or None if r lies outside U+0900…U+0D7F.
//
// Code points not (yet) assigned by Unicode are attributed to the block they
// lie in.
func BrahmicScheme(r rune) Scheme {
	if r < brahmicLow || r > brahmicHigh {
		return None
	}
	i := sort.Search(len(brahmicRanges), func(i int) bool {
		return brahmicRanges[i].hi >= r
	})
	if i < len(brahmicRanges) && brahmicRanges[i].lo <= r {
		return brahmicRanges[i].scheme
	}
	return None
}

// firstBrahmic returns the first code point of text inside the Brahmic range.
func firstBrahmic(text string) (rune, bool) {
	for _, r := range text {
		if r >= brahmicLow && r <= brahmicHigh {
			return r, true
		}
	}
	return 0, false
}
