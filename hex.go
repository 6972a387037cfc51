package xelis

import (
	"bytes"
	"encoding/hex"
)

// BytesToHex encodes data as lowercase hexadecimal. The output length
// is always exactly twice the input length; this operation cannot fail.
func BytesToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// HexToBytes decodes a hexadecimal string. Both cases are accepted on
// input. It returns a *DecodeError if the string has odd length or
// contains a character outside [0-9a-fA-F].
func HexToBytes(text string) ([]byte, error) {
	decoded, err := hex.DecodeString(text)
	if err != nil {
		return nil, &DecodeError{Reason: err.Error()}
	}
	return decoded, nil
}

// VerifyHash decodes two hex-encoded hashes and compares the decoded
// bytes. The comparison is on byte values, not on the hex text, so
// "DEADBEEF" and "deadbeef" verify as equal. A *DecodeError from either
// operand aborts the comparison.
func VerifyHash(hexA, hexB string) (bool, error) {
	a, err := HexToBytes(hexA)
	if err != nil {
		return false, &DecodeError{Reason: "first hash: " + err.(*DecodeError).Reason}
	}

	b, err := HexToBytes(hexB)
	if err != nil {
		return false, &DecodeError{Reason: "second hash: " + err.(*DecodeError).Reason}
	}

	return bytes.Equal(a, b), nil
}
