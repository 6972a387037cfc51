package xelis

// HashMultiple feeds data through the hash function iterations times:
// the digest of each round becomes the input of the next.
//
// iterations == 0 is the identity transform; a copy of data is returned
// unchanged and no hashing is performed. For iterations >= 1 the result
// is always exactly HashSize bytes.
//
// The chain fails on the first round that fails; digests from earlier
// rounds are discarded, never returned partially.
func (h *Hasher) HashMultiple(data []byte, iterations uint32) ([]byte, error) {
	if iterations == 0 {
		return append([]byte(nil), data...), nil
	}

	digest, err := h.Hash(data)
	if err != nil {
		return nil, err
	}

	for i := uint32(1); i < iterations; i++ {
		digest, err = h.Hash(digest[:])
		if err != nil {
			return nil, err
		}
	}

	return digest.Bytes(), nil
}
