// Package commands defines the xelis CLI for hashing byte buffers with
// the XELIS memory-hard digest.
//
// Commands
//
//   - hash    Hash input and print the digest
//   - chain   Hash input repeatedly, feeding each digest back in
//   - batch   Hash many inputs in order, aborting on the first failure
//   - encode  Encode bytes as lowercase hex
//   - decode  Decode a hex string to bytes
//   - verify  Compare two hex-encoded hashes by decoded value
//   - size    Print the digest size in bytes
//
// # Implementation
//
// The root command installs the process-wide logger exactly once before
// any subcommand runs and shares a single xelis.Hasher across handlers,
// so scratchpad reuse carries across invocations within one process.
package commands
