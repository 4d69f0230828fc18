/*
Package dat implements a frozen double-array trie over a dense alphabet.

The trie is built elsewhere (see the token trie of package lipi) and is
read-only afterwards:

  - states are indices into Base/Check; 0 is unused and Root is usually 1
  - a transition on dense symbol c goes from s to t = Base[s]+c,
    provided Check[t] == s
  - symbols are dense alphabet IDs in [1..Sigma]; 0 means "not in alphabet"
    and never has a transition

Payloads for terminal states are not part of the DAT. Clients keep them in
side tables indexed by state.
*/
package dat

// DAT is a frozen double-array trie.
type DAT struct {
	Root  uint32 // root state, commonly 1
	Sigma uint16 // size of the dense alphabet

	Base  []int32 // len == N
	Check []int32 // len == N

	// Alphabet maps code points to dense symbol IDs in [1..Sigma].
	Alphabet PagedMap
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Step maps r to its dense symbol and performs a transition from state.
func (d *DAT) Step(state uint32, r rune) (uint32, bool) {
	return d.Transition(state, d.Alphabet.Lookup(r))
}

// Dense maps a code point to a dense alphabet ID, or 0 if it is not part of
// the alphabet.
func (d *DAT) Dense(r rune) uint16 { return d.Alphabet.Lookup(r) }
