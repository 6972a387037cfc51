package xelis

import (
	"bytes"
	"errors"
	"testing"

	"github.com/opd-ai/go-xelis/internal/xelishash"
)

// Test batch output matches per-item hashes in input order.
func TestBatchHashOrder(t *testing.T) {
	hasher := New()

	items := [][]byte{
		[]byte("alpha"),
		[]byte("beta"),
		[]byte("gamma"),
		{}, // empty items are valid inputs
	}

	digests, err := hasher.BatchHash(items)
	if err != nil {
		t.Fatalf("BatchHash() error = %v", err)
	}
	if len(digests) != len(items) {
		t.Fatalf("BatchHash() returned %d digests, want %d", len(digests), len(items))
	}

	for i, item := range items {
		want, err := hasher.Hash(item)
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if digests[i] != want {
			t.Errorf("item %d: digest = %s, want %s", i, digests[i].Hex(), want.Hex())
		}
	}
}

// Test the empty batch succeeds with an empty result.
func TestBatchHashEmpty(t *testing.T) {
	hasher := New()

	digests, err := hasher.BatchHash(nil)
	if err != nil {
		t.Fatalf("BatchHash(nil) error = %v", err)
	}
	if len(digests) != 0 {
		t.Errorf("BatchHash(nil) returned %d digests, want 0", len(digests))
	}
}

// Test fail-fast: the failing item aborts the batch, no partial result
// is returned, and later items are never hashed.
func TestBatchHashFailFast(t *testing.T) {
	poison := []byte("poison")

	var hashed [][]byte
	hasher := New()
	real := hasher.digest
	hasher.digest = func(input []byte, pad *xelishash.ScratchPad) ([HashSize]byte, error) {
		if bytes.Equal(input, poison) {
			return [HashSize]byte{}, errors.New("rejected input")
		}
		hashed = append(hashed, append([]byte(nil), input...))
		return real(input, pad)
	}

	items := [][]byte{
		[]byte("before"),
		poison,
		[]byte("after"),
	}

	digests, err := hasher.BatchHash(items)
	if err == nil {
		t.Fatal("BatchHash() expected error, got nil")
	}
	if digests != nil {
		t.Errorf("BatchHash() returned partial results on failure: %d digests", len(digests))
	}

	var digestErr *DigestError
	if !errors.As(err, &digestErr) {
		t.Errorf("BatchHash() error does not wrap *DigestError: %v", err)
	}

	if len(hashed) != 1 || !bytes.Equal(hashed[0], []byte("before")) {
		t.Errorf("items hashed before abort = %q, want only %q", hashed, "before")
	}
}

// Test the batch error names the failing item's position.
func TestBatchHashErrorPosition(t *testing.T) {
	hasher := New()
	hasher.digest = func([]byte, *xelishash.ScratchPad) ([HashSize]byte, error) {
		return [HashSize]byte{}, errors.New("always fails")
	}

	_, err := hasher.BatchHash([][]byte{[]byte("only")})
	if err == nil {
		t.Fatal("BatchHash() expected error, got nil")
	}
	if !bytes.Contains([]byte(err.Error()), []byte("item 0")) {
		t.Errorf("BatchHash() error %q does not name the failing item", err)
	}
}
