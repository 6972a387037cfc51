package xelis

import "fmt"

// BatchHash hashes every item in order and returns the digests in the
// same order. Items are independent; each one is hashed with its own
// scratchpad borrow.
//
// The batch is fail-fast: the first item that fails aborts the whole
// operation, no result slice is returned, and the remaining items are
// not processed. The returned error wraps the *DigestError with the
// failing item's position.
func (h *Hasher) BatchHash(items [][]byte) ([]Digest, error) {
	digests := make([]Digest, 0, len(items))

	for i, item := range items {
		digest, err := h.Hash(item)
		if err != nil {
			return nil, fmt.Errorf("xelis: batch item %d: %w", i, err)
		}
		digests = append(digests, digest)
	}

	return digests, nil
}
