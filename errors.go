package xelis

// DigestError reports that the underlying hash algorithm rejected the
// input or its scratch state. The call that produced it cannot succeed
// by retrying; each hash call is independent and nothing is retried
// internally.
type DigestError struct {
	// Reason is a human-readable description of the failure.
	Reason string
}

func (e *DigestError) Error() string {
	return "xelis: hashing error: " + e.Reason
}

// DecodeError reports malformed hexadecimal input: odd length or a
// character outside [0-9a-fA-F]. It always indicates a caller-side
// input problem.
type DecodeError struct {
	// Reason is a human-readable description of the failure.
	Reason string
}

func (e *DecodeError) Error() string {
	return "xelis: invalid hex string: " + e.Reason
}

// ConversionError reports that a value crossing the boundary could not
// be translated into the shape an operation expects, for example a
// batch input entry that is not a valid byte buffer encoding.
type ConversionError struct {
	// Reason is a human-readable description of the failure.
	Reason string
}

func (e *ConversionError) Error() string {
	return "xelis: conversion error: " + e.Reason
}
