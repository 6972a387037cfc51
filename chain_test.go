package xelis

import (
	"bytes"
	"errors"
	"testing"

	"github.com/opd-ai/go-xelis/internal/xelishash"
)

// Test that zero iterations is the identity transform.
func TestHashMultipleIdentity(t *testing.T) {
	hasher := New()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"text", []byte("unchanged")},
		{"binary", []byte{0x00, 0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hasher.HashMultiple(tt.data, 0)
			if err != nil {
				t.Fatalf("HashMultiple() error = %v", err)
			}
			if !bytes.Equal(got, tt.data) {
				t.Errorf("HashMultiple(d, 0) = %x, want %x", got, tt.data)
			}
		})
	}
}

// Test the identity result is a copy, not an alias of the input.
func TestHashMultipleIdentityCopies(t *testing.T) {
	hasher := New()

	data := []byte("mutate me")
	got, err := hasher.HashMultiple(data, 0)
	if err != nil {
		t.Fatalf("HashMultiple() error = %v", err)
	}

	data[0] = 'X'
	if got[0] == 'X' {
		t.Error("HashMultiple(d, 0) aliases the caller's buffer")
	}
}

// Test chain composition: chain(d, k) == hash(chain(d, k-1)).
func TestHashMultipleComposition(t *testing.T) {
	hasher := New()
	data := []byte("chain input")

	for k := uint32(1); k <= 4; k++ {
		prev, err := hasher.HashMultiple(data, k-1)
		if err != nil {
			t.Fatalf("HashMultiple(d, %d) error = %v", k-1, err)
		}

		rehashed, err := hasher.Hash(prev)
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}

		chained, err := hasher.HashMultiple(data, k)
		if err != nil {
			t.Fatalf("HashMultiple(d, %d) error = %v", k, err)
		}

		if !bytes.Equal(chained, rehashed.Bytes()) {
			t.Errorf("chain(d, %d) = %x, want hash(chain(d, %d)) = %x", k, chained, k-1, rehashed.Bytes())
		}
	}
}

// Test three iterations equals three nested hash applications.
func TestHashMultipleNested(t *testing.T) {
	hasher := New()
	data := []byte("nested")

	d1, err := hasher.Hash(data)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	d2, err := hasher.Hash(d1[:])
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	d3, err := hasher.Hash(d2[:])
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	chained, err := hasher.HashMultiple(data, 3)
	if err != nil {
		t.Fatalf("HashMultiple() error = %v", err)
	}

	if !bytes.Equal(chained, d3.Bytes()) {
		t.Errorf("HashMultiple(d, 3) = %x, want %x", chained, d3.Bytes())
	}
}

// Test the chain aborts on the first failing round and surfaces no
// intermediate digest.
func TestHashMultipleFailFast(t *testing.T) {
	calls := 0
	hasher := New()
	real := hasher.digest
	hasher.digest = func(input []byte, pad *xelishash.ScratchPad) ([HashSize]byte, error) {
		calls++
		if calls == 3 {
			return [HashSize]byte{}, errors.New("round failure")
		}
		return real(input, pad)
	}

	result, err := hasher.HashMultiple([]byte("data"), 5)
	if err == nil {
		t.Fatal("HashMultiple() expected error, got nil")
	}
	if result != nil {
		t.Errorf("HashMultiple() returned partial result %x on failure", result)
	}

	var digestErr *DigestError
	if !errors.As(err, &digestErr) {
		t.Errorf("HashMultiple() error type = %T, want *DigestError", err)
	}
	if calls != 3 {
		t.Errorf("digest called %d times, want 3 (abort on failing round)", calls)
	}
}
