/*
Package lipi detects the encoding scheme of a piece of Sanskrit or Indic text.

A text is either written in one of nine Brahmic scripts (Devanagari, Bengali,
Gurmukhi, Gujarati, Oriya, Tamil, Telugu, Kannada, Malayalam) or in one of
six Latin-alphabet romanizations (IAST, Kolkata, ITRANS, SLP1, Velthuis,
Harvard-Kyoto). Detect picks the single most probable scheme; it does not
validate that the text is well-formed in that scheme.

Detection runs in two stages. First, control markup is removed from the
input (escaped sigils like `\##` and blocks enclosed in `##…##` or `{#…#}`).
Then the first code point in the Brahmic range U+0900…U+0D7F decides the
native script. If there is none, an ordered cascade of signature rules
selects a romanization:

	1. IAST family letters (macron, underdot, …), refined to Kolkata by ē/ō
	2. ITRANS-only tokens        (ee, ^i, RRi, chh, sh, .a, …)
	3. SLP1-only tokens          (f, x, E, O, kz, tT, aR, …)
	4. Velthuis-only tokens      (.m, .h, "n, ~s, …)
	5. doubled vowels aa/ii/uu   (ITRANS or Velthuis, resolved to ITRANS)
	6. plain Harvard-Kyoto letters

Signature tokens are compiled once into a frozen double-array trie, and a text
is scanned in a single pass, collecting the signatures of all tokens found.
All tables are immutable after package initialization, so every function in
this package is safe for concurrent use.

The detection rules follow detect.js (https://github.com/sanskrit/detect.js).

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package lipi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lipi'
func tracer() tracing.Trace {
	return tracing.Select("lipi")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
