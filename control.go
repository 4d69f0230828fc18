package lipi

import (
	"regexp"
	"strings"
)

// Control markup used by transliteration pipelines:
//
//	\##  \{#  \#}     escaped sigils, literal text
//	##…##  {#…#}      blocks excluded from transliteration
//
// Escapes are removed before blocks, so an escaped sigil never opens or
// closes a block. A block without a closing sigil runs to the end of the text.
var (
	reEscapedControl = regexp.MustCompile(`\\(?:\{#|##|#\})`)
	reControlBlock   = regexp.MustCompile(`(?s)##.*?(?:##|\z)|\{#.*?(?:#\}|\z)`)
	reSGMLTag        = regexp.MustCompile(`(?s)<.*?>`)
)

// StripControl removes control markup from text. Text without markup is
// returned unchanged.
func StripControl(text string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	text = reEscapedControl.ReplaceAllLiteralString(text, "")
	return reControlBlock.ReplaceAllLiteralString(text, "")
}

// stripSGML removes SGML/XML tags like `<b>` or `</span>` from text.
func stripSGML(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return reSGMLTag.ReplaceAllLiteralString(text, "")
}
