package xelis

import (
	"github.com/opd-ai/go-xelis/internal/xelishash"
)

// digestFunc is the contract this package requires from the hash
// primitive: a pure function of the input that uses the scratchpad as
// disposable working memory and either produces a 32-byte digest or
// fails.
type digestFunc func(input []byte, pad *xelishash.ScratchPad) ([HashSize]byte, error)

// Hasher computes XELIS hashes. It is safe for concurrent use: every
// call borrows its own scratchpad from the pool, so goroutines never
// share working memory.
//
// The zero value is not usable; construct with New.
type Hasher struct {
	digest digestFunc
}

// New creates a hasher backed by the XELIS v2 digest. No scratchpad is
// allocated up front; pads are created lazily on first use and reused
// afterwards.
func New() *Hasher {
	return &Hasher{digest: xelishash.Sum}
}

// Hash computes the XELIS digest of data.
//
// On failure it returns a *DigestError describing what the algorithm
// rejected. The error is terminal for this call; nothing is retried.
func (h *Hasher) Hash(data []byte) (Digest, error) {
	pad := acquireScratchPad()
	defer releaseScratchPad(pad)

	sum, err := h.digest(data, pad)
	if err != nil {
		return Digest{}, &DigestError{Reason: err.Error()}
	}

	return Digest(sum), nil
}

// HashHex computes the XELIS digest of data and returns it as a
// lowercase hex string. Failure modes are identical to Hash.
func (h *Hasher) HashHex(data []byte) (string, error) {
	digest, err := h.Hash(data)
	if err != nil {
		return "", err
	}
	return digest.Hex(), nil
}

// HashString hashes the UTF-8 encoding of text and returns the digest
// as a lowercase hex string.
func (h *Hasher) HashString(text string) (string, error) {
	return h.HashHex([]byte(text))
}
