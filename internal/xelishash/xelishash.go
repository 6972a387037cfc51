// Package xelishash implements the XELIS v2 memory-hard digest function.
// This file contains the public API and the three hashing stages.
//
// The digest maps an arbitrary input to a 32-byte output through a large
// scratchpad: a ChaCha20 keystream derived from the input fills the
// scratchpad, data-dependent integer mixing passes scramble it, an AES
// block sweep diffuses it, and a BLAKE3 hash of the final scratchpad
// state plus the input produces the digest. The scratchpad is pure
// working memory; its contents are not meaningful after a call and it
// may be reused freely across calls.
package xelishash

import (
	"crypto/aes"
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

const (
	// HashSize is the digest output length in bytes.
	HashSize = 32

	// MemoryWords is the scratchpad size in 64-bit words.
	MemoryWords = 429 * 128

	// MemorySize is the scratchpad size in bytes (~429 KB).
	MemorySize = MemoryWords * 8

	// mixingPasses is the number of data-dependent mixing passes over
	// the full scratchpad in stage 2.
	mixingPasses = 3

	// aesBlockSize is the AES block size used by the stage 3 sweep.
	aesBlockSize = 16
)

// ErrInvalidScratchPad is returned when the provided scratchpad does not
// match the layout the algorithm requires.
var ErrInvalidScratchPad = errors.New("xelishash: scratchpad size mismatch")

// Sum computes the XELIS digest of input using pad as working memory.
//
// The scratchpad is overwritten from its first byte on every call, so a
// pad can be reused across calls without any carry-over between inputs.
// The caller must guarantee exclusive access to the pad for the duration
// of the call.
func Sum(input []byte, pad *ScratchPad) ([HashSize]byte, error) {
	var digest [HashSize]byte

	if pad == nil || len(pad.buf) != MemorySize {
		return digest, ErrInvalidScratchPad
	}

	if err := fillScratchPad(input, pad.buf); err != nil {
		return digest, err
	}

	mixScratchPad(pad.buf)

	if err := encryptScratchPad(pad.buf); err != nil {
		return digest, err
	}

	return finalize(input, pad.buf), nil
}

// fillScratchPad implements stage 1: the scratchpad is filled with a
// ChaCha20 keystream whose key and nonce are derived from the input.
// Every byte of the pad is overwritten, which is what makes pad reuse
// across calls safe.
func fillScratchPad(input []byte, buf []byte) error {
	seed := blake3.Sum512(input)

	key := seed[:chacha20.KeySize]
	nonce := seed[chacha20.KeySize : chacha20.KeySize+chacha20.NonceSize]

	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return err
	}

	for i := range buf {
		buf[i] = 0
	}
	stream.XORKeyStream(buf, buf)

	return nil
}

// mixScratchPad implements stage 2: data-dependent mixing passes over
// the scratchpad words. Each step reads a word at an address derived
// from the running state, so the memory access pattern depends on the
// input and cannot be predicted without performing the work.
func mixScratchPad(buf []byte) {
	a := binary.LittleEndian.Uint64(buf[:8])
	b := binary.LittleEndian.Uint64(buf[len(buf)-8:])

	for pass := 0; pass < mixingPasses; pass++ {
		for i := 0; i < MemoryWords; i++ {
			j := int((a ^ b) % MemoryWords)
			v := binary.LittleEndian.Uint64(buf[j*8:])

			a = bits.RotateLeft64(a+v*0x9E3779B97F4A7C15, 31)
			b ^= bits.RotateLeft64(v, int(a&63))

			w := binary.LittleEndian.Uint64(buf[i*8:])
			binary.LittleEndian.PutUint64(buf[i*8:], w^(a+b))
		}
	}
}

// encryptScratchPad implements stage 3: a chained AES sweep over the
// scratchpad. Each 16-byte block is XORed with the previous ciphertext
// block and encrypted in place, so a change anywhere in the pad
// propagates through the remainder of the sweep.
func encryptScratchPad(buf []byte) error {
	var key [aesBlockSize]byte
	copy(key[:], buf[:aesBlockSize])

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return err
	}

	var prev [aesBlockSize]byte
	for off := 0; off+aesBlockSize <= len(buf); off += aesBlockSize {
		for k := 0; k < aesBlockSize; k++ {
			buf[off+k] ^= prev[k]
		}
		block.Encrypt(buf[off:off+aesBlockSize], buf[off:off+aesBlockSize])
		copy(prev[:], buf[off:off+aesBlockSize])
	}

	return nil
}

// finalize hashes the scratchpad state together with the original input
// to produce the 32-byte digest. Including the input binds the digest to
// it directly, not only through the scratchpad derivation.
func finalize(input []byte, buf []byte) [HashSize]byte {
	h := blake3.New()
	h.Write(buf)
	h.Write(input)

	var digest [HashSize]byte
	copy(digest[:], h.Sum(nil))
	return digest
}
