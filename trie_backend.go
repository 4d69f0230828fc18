package lipi

// tokenIterator iterates over successive prefix states for one key.
// Next returns 0 once the key has left the trie.
type tokenIterator interface {
	Next(symbol uint16) int
}

type tokenTrieStats struct {
	Backend    string
	Tokens     int
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s tokenTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// tokenTrie is the internal backend abstraction for signature tokens.
//
// Tokens are inserted while the trie is mutable. Positions handed out during
// construction are temporary and must be resolved to final state IDs after
// Freeze.
type tokenTrie interface {
	EncodeKey(s string) ([]uint16, bool)
	AllocPositionForToken(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Iterator() tokenIterator
	Stats() tokenTrieStats
}
