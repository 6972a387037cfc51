// Package xelis provides a service layer over the XELIS memory-hard
// hash function for callers that exchange plain byte buffers, strings,
// and structured result records.
//
// The digest itself is expensive to run because it requires a large
// scratchpad of working memory. This package amortizes that cost by
// pooling scratchpads and reusing them across calls, while guaranteeing
// that no two concurrent calls ever share a pad.
//
// Example usage:
//
//	hasher := xelis.New()
//
//	digest, err := hasher.Hash([]byte("block data"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(digest.Hex())
//
// Package-level functions operate on a shared process-wide hasher for
// callers that do not need their own instance.
package xelis

import "encoding/hex"

// HashSize is the digest length in bytes. Every successful hash
// produces exactly this many bytes.
const HashSize = 32

// Digest is the fixed 32-byte output of a successful hash call. It is a
// plain value and never aliases the scratchpad it was computed from.
type Digest [HashSize]byte

// Bytes returns the digest as a freshly allocated byte slice.
func (d Digest) Bytes() []byte {
	return append([]byte(nil), d[:]...)
}

// Hex returns the lowercase hexadecimal encoding of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// defaultHasher backs the package-level convenience functions.
var defaultHasher = New()

// Hash computes the XELIS digest of data using the shared hasher.
func Hash(data []byte) (Digest, error) {
	return defaultHasher.Hash(data)
}

// HashHex computes the XELIS digest of data and returns it hex-encoded.
func HashHex(data []byte) (string, error) {
	return defaultHasher.HashHex(data)
}

// HashString hashes the UTF-8 bytes of text and returns the digest
// hex-encoded.
func HashString(text string) (string, error) {
	return defaultHasher.HashString(text)
}

// HashMultiple feeds data through the hash function iterations times.
// See Hasher.HashMultiple.
func HashMultiple(data []byte, iterations uint32) ([]byte, error) {
	return defaultHasher.HashMultiple(data, iterations)
}

// BatchHash hashes every item in order, aborting on the first failure.
// See Hasher.BatchHash.
func BatchHash(items [][]byte) ([]Digest, error) {
	return defaultHasher.BatchHash(items)
}

// HashDetailed hashes data and packages the digest with its hex form
// and size. See Hasher.HashDetailed.
func HashDetailed(data []byte) (*DetailedHashResult, error) {
	return defaultHasher.HashDetailed(data)
}

// HashWithMetadata hashes data and packages the digest together with
// input and digest lengths. See Hasher.HashWithMetadata.
func HashWithMetadata(data []byte) (*MetadataHashResult, error) {
	return defaultHasher.HashWithMetadata(data)
}
