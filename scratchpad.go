package xelis

import (
	"sync"

	"github.com/opd-ai/go-xelis/internal/xelishash"
)

// Scratchpad pooling.
//
// A scratchpad is ~429 KB of working memory, far too expensive to
// allocate per hash call. The pool hands each caller exclusive
// ownership of a pad for the duration of one call: Get never returns a
// pad that another goroutine still holds, so pooled reuse cannot
// corrupt a concurrent call. Release must run on every exit path
// (callers pair acquire with defer) so a failed hash can never strand
// a pad outside the pool.

var scratchPadPool = sync.Pool{
	New: func() interface{} {
		return xelishash.NewScratchPad()
	},
}

// acquireScratchPad takes exclusive ownership of a scratchpad, lazily
// allocating one if the pool is empty.
func acquireScratchPad() *xelishash.ScratchPad {
	return scratchPadPool.Get().(*xelishash.ScratchPad)
}

// releaseScratchPad returns a scratchpad to the pool for reuse. The pad
// is cleared first; its contents after a hash are spent working state
// with no further meaning.
func releaseScratchPad(pad *xelishash.ScratchPad) {
	if pad != nil {
		pad.Reset()
		scratchPadPool.Put(pad)
	}
}
