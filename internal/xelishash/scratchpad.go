package xelishash

// ScratchPad is the reusable working memory required by Sum. Allocating
// one is expensive (~429 KB), so callers are expected to hold on to a
// pad and reuse it across calls rather than allocating per hash.
//
// A ScratchPad is not safe for concurrent use. Each goroutine must use
// its own pad, or access must be serialized externally.
type ScratchPad struct {
	buf []byte
}

// NewScratchPad allocates a scratchpad of the size Sum requires.
func NewScratchPad() *ScratchPad {
	return &ScratchPad{buf: make([]byte, MemorySize)}
}

// Reset clears the scratchpad contents. Sum overwrites the pad fully on
// every call, so Reset is not required for correctness between hashes;
// it exists so pooled pads can be returned in a cleared state.
func (p *ScratchPad) Reset() {
	for i := range p.buf {
		p.buf[i] = 0
	}
}

// Size returns the scratchpad length in bytes.
func (p *ScratchPad) Size() int {
	return len(p.buf)
}
