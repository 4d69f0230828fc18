package lipi

import (
	"fmt"
	"sync"
	"unicode/utf8"
)

// signature is a bit set of romanization signatures found in a text.
type signature uint8

const (
	sigIASTOrKolkata signature = 1 << iota
	sigKolkata
	sigITRANS
	sigSLP1
	sigVelthuis
	sigITRANSOrVelthuis
	sigHarvardKyoto
)

// signatureTokens lists, for every signature, the tokens whose occurrence
// anywhere in a text sets the signature.
var signatureTokens = [...]struct {
	sig    signature
	name   string
	tokens []string
}{
	{sigIASTOrKolkata, "iast-or-kolkata", join(
		chars("āīūṛṝḷḹēōṃḥṅñṭḍṇśṣḻĀĪŪṚṜḶḸĒŌṂḤṄÑṬḌṆŚṢḺ"),
		cross("aiueoAIUEO", "\u0304"),
		cross("rlRL", "\u0323"), // vocalic r/l, long form adds U+0304
		cross("mhtdMHTD", "\u0323"),
		cross("nN", "\u0307\u0303\u0323"),
		cross("sS", "\u0301\u0323"),
		cross("lL", "\u0331"),
	)},
	{sigKolkata, "kolkata", join(
		chars("ēōĒŌ"),
		cross("eoEO", "\u0304"),
	)},
	{sigITRANS, "itrans", []string{
		"ee", "oo", "^i", "^I", "RRi", "RRI", "Li", "LI", "~N", "N^",
		"Ch", "chh", "JN", "sh", "Sh", ".a",
	}},
	{sigSLP1, "slp1", join(
		chars("fFxXEOCYwWqQPB"),
		[]string{"kz", "Nk", "Ng", "tT", "dD", "Sc", "Sn", "Gy", "Gr"},
		cross("aAiIuUeo", "R"),
	)},
	{sigVelthuis, "velthuis", join(
		cross(".", "mhnrltds"),
		[]string{`"n`, "~s"},
	)},
	{sigITRANSOrVelthuis, "itrans-or-velthuis", []string{"aa", "ii", "uu", "~n"}},
	{sigHarvardKyoto, "hk", chars("aAiIuUeoRMHkgGcjJTDNtdnpbmyrlvzSsh")},
}

// romanRule is one step of the romanization cascade. If the signature match
// is present, the rule decides for scheme, unless the optional refinement
// signature is present as well, which selects refined instead.
type romanRule struct {
	match   signature
	scheme  Scheme
	refine  signature
	refined Scheme
}

// romanRules is evaluated in order, first match wins. Each rule tests for a
// signature no later rule's scheme can produce; Harvard-Kyoto letters are a
// subset of almost every romanization and come last.
var romanRules = [...]romanRule{
	{match: sigIASTOrKolkata, scheme: IAST, refine: sigKolkata, refined: Kolkata},
	{match: sigITRANS, scheme: ITRANS},
	{match: sigSLP1, scheme: SLP1},
	{match: sigVelthuis, scheme: Velthuis},
	{match: sigITRANSOrVelthuis, scheme: ITRANS}, // ambiguous, ITRANS by default
	{match: sigHarvardKyoto, scheme: HarvardKyoto},
}

// decide runs the cascade on the signatures found in a text.
func (mask signature) decide() Scheme {
	for _, rule := range romanRules {
		if mask&rule.match == 0 {
			continue
		}
		if rule.refine != 0 && mask&rule.refine != 0 {
			return rule.refined
		}
		return rule.scheme
	}
	return None
}

// candidates lists every romanization with a signature in mask.
func (mask signature) candidates() SchemeSet {
	set := NewSchemeSet()
	for _, rule := range romanRules {
		if mask&rule.match == 0 {
			continue
		}
		if rule.refine != 0 && mask&rule.refine != 0 {
			set = set.with(rule.refined)
		} else {
			set = set.with(rule.scheme)
		}
	}
	if mask&sigITRANSOrVelthuis != 0 {
		set = set.with(Velthuis)
	}
	return set
}

// --- Token index -----------------------------------------------------------

// signatureIndex finds signature tokens in a text.
type signatureIndex struct {
	tokens    tokenTrie
	store     *signatureStore
	maxLength int // longest token, in runes
}

// signatures is compiled on first use and shared read-only afterwards.
var signatures = sync.OnceValue(func() *signatureIndex {
	idx, err := compileSignatures()
	assert(err == nil, fmt.Sprintf("signature tokens do not compile: %v", err))
	return idx
})

func compileSignatures() (*signatureIndex, error) {
	trie := newDATBackend()
	type pendingMask struct {
		pos  int
		mask signature
	}
	pending := make([]pendingMask, 0, 128)
	maxLength := 0
	for _, s := range signatureTokens {
		for _, token := range s.tokens {
			key, ok := trie.EncodeKey(token)
			if !ok || len(key) == 0 {
				return nil, fmt.Errorf("signature %s: cannot encode token %q", s.name, token)
			}
			pos := trie.AllocPositionForToken(key)
			if pos == 0 {
				return nil, fmt.Errorf("signature %s: could not allocate trie position for token %q", s.name, token)
			}
			pending = append(pending, pendingMask{pos: pos, mask: s.sig})
			maxLength = max(maxLength, len(key))
		}
	}
	trie.Freeze()
	tracer().Debugf("signature tokens compiled into %s", trie)
	idx := &signatureIndex{
		tokens:    trie,
		store:     newSignatureStore(trie.Stats().TotalSlots),
		maxLength: maxLength,
	}
	for _, p := range pending {
		state := trie.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("could not resolve trie position after freeze for temporary position %d", p.pos)
		}
		if err := idx.store.Put(state, p.mask); err != nil {
			return nil, err
		}
	}
	stats := trie.Stats()
	tracer().Infof("signature trie stats backend=%s tokens=%d terminals=%d used=%d total=%d fill=%.2f",
		stats.Backend, stats.Tokens, idx.store.Terminals(), stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return idx, nil
}

// scan collects the signatures of all tokens occurring in text.
func (idx *signatureIndex) scan(text string) signature {
	if text == "" {
		return 0
	}
	key, _ := idx.tokens.EncodeKey(text)
	var mask signature
	for i := range key {
		mask = idx.mergePrefixSignatures(key[i:], mask)
	}
	return mask
}

// mergePrefixSignatures looks up all prefixes of a text fragment and merges
// the signatures of matching tokens into mask.
func (idx *signatureIndex) mergePrefixSignatures(fragment []uint16, mask signature) signature {
	if len(fragment) == 0 || fragment[0] == 0 {
		return mask
	}
	it := idx.tokens.Iterator()
	for j, c := range fragment {
		if j == idx.maxLength {
			break
		}
		state := it.Next(c)
		if state == 0 {
			break
		}
		mask = idx.store.MergeInto(state, mask)
	}
	return mask
}

// --- Token list helpers ----------------------------------------------------

// chars splits s into single-rune tokens.
func chars(s string) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// cross returns all two-rune tokens with the first rune from firsts and the
// second rune from seconds.
func cross(firsts, seconds string) []string {
	var tokens []string
	for _, f := range firsts {
		for _, s := range seconds {
			tokens = append(tokens, string([]rune{f, s}))
		}
	}
	return tokens
}

func join(lists ...[]string) []string {
	var tokens []string
	for _, l := range lists {
		tokens = append(tokens, l...)
	}
	return tokens
}
