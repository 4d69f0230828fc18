package dat

// PagedMap maps BMP code points to dense alphabet IDs (uint16) with a
// two-level page table:
//   - Top[hi] = 1-based page index for high byte hi, or 0 if absent
//   - Pages is a flat array of 256 entries per allocated page
//
// Token alphabets are small and clustered (ASCII, Latin Extended
// Additional, combining marks), so only a handful of pages get allocated.
// Code points outside the BMP are never part of the alphabet.
type PagedMap struct {
	Top   [256]uint16
	Pages []uint16
}

// Lookup returns the dense ID of r, or 0 if r is not in the alphabet.
func (m *PagedMap) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.Top[r>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(r&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMap) NumPages() int { return len(m.Pages) >> 8 }

// Set maps r to dense. It reports false if r is outside the BMP.
// Setting dense = 0 clears an entry.
func (m *PagedMap) Set(r rune, dense uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return true
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(m.NumPages())
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(r&0xFF)] = dense
	return true
}
