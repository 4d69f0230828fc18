package lipi

import "fmt"

const initialSignatureStoreSlots = 2 // include slot 0 + root slot

// signatureStore keeps the signature mask of terminal token states, directly
// indexed by trie state. Non-terminal states hold an empty mask.
type signatureStore struct {
	masks []signature // will grow with demand
}

func newSignatureStore(states int) *signatureStore {
	return &signatureStore{
		masks: make([]signature, max(states, initialSignatureStoreSlots)),
	}
}

func (s *signatureStore) ensure(pos int) {
	if pos < len(s.masks) {
		return
	}
	s.masks = append(s.masks, make([]signature, pos+1-len(s.masks))...)
}

// Put adds the signatures in mask to trie state pos. A token may belong to
// more than one signature, so masks accumulate.
func (s *signatureStore) Put(pos int, mask signature) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie position: %d", pos)
	}
	if mask == 0 {
		return fmt.Errorf("empty signature mask for trie position %d", pos)
	}
	s.ensure(pos)
	s.masks[pos] |= mask
	return nil
}

// Mask returns the signatures of trie state pos.
func (s *signatureStore) Mask(pos int) (signature, bool) {
	if pos <= 0 || pos >= len(s.masks) || s.masks[pos] == 0 {
		return 0, false
	}
	return s.masks[pos], true
}

// MergeInto merges the signatures of trie state pos into dst.
func (s *signatureStore) MergeInto(pos int, dst signature) signature {
	if mask, ok := s.Mask(pos); ok {
		return dst | mask
	}
	return dst
}

// Terminals counts the states carrying a signature.
func (s *signatureStore) Terminals() int {
	n := 0
	for _, m := range s.masks {
		if m != 0 {
			n++
		}
	}
	return n
}
