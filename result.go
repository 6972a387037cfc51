package xelis

// Result records packaged for the boundary. All three shapes are
// read-only snapshots assembled at one computation point from a fresh
// digest; none of them alias pooled memory, and their derived fields
// are always internally consistent with the digest they carry.

// HashResult is a digest together with its hex encoding.
type HashResult struct {
	Bytes []byte `json:"bytes"`
	Hex   string `json:"hex"`
}

// Length returns the digest length in bytes.
func (r HashResult) Length() int {
	return len(r.Bytes)
}

// DetailedHashResult is a HashResult with the digest size carried as an
// explicit field. Size always equals the length of Bytes.
type DetailedHashResult struct {
	HashResult
	Size int `json:"size"`
}

// MetadataHashResult pairs a digest with the length of the input it was
// computed from. HashLength always equals the length of HashBytes.
type MetadataHashResult struct {
	InputLength int    `json:"input_length"`
	HashLength  int    `json:"hash_length"`
	HashBytes   []byte `json:"hash_bytes"`
	HashHex     string `json:"hash_hex"`
}

// HashDetailed hashes data and returns the digest packaged with its hex
// form and size. Failure modes are identical to Hash.
func (h *Hasher) HashDetailed(data []byte) (*DetailedHashResult, error) {
	digest, err := h.Hash(data)
	if err != nil {
		return nil, err
	}
	return packDetailed(digest), nil
}

// HashWithMetadata hashes data and returns the digest packaged with the
// input length and digest length. Failure modes are identical to Hash.
func (h *Hasher) HashWithMetadata(data []byte) (*MetadataHashResult, error) {
	digest, err := h.Hash(data)
	if err != nil {
		return nil, err
	}
	return packMetadata(len(data), digest), nil
}

func packResult(digest Digest) HashResult {
	return HashResult{
		Bytes: digest.Bytes(),
		Hex:   digest.Hex(),
	}
}

func packDetailed(digest Digest) *DetailedHashResult {
	r := packResult(digest)
	return &DetailedHashResult{
		HashResult: r,
		Size:       r.Length(),
	}
}

func packMetadata(inputLength int, digest Digest) *MetadataHashResult {
	return &MetadataHashResult{
		InputLength: inputLength,
		HashLength:  HashSize,
		HashBytes:   digest.Bytes(),
		HashHex:     digest.Hex(),
	}
}
