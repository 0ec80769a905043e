// Package iocycle detects I/O cycles: situations where a program's output is
// redirected back into one of its own inputs (for example `prog file.txt >
// file.txt`), which would otherwise loop forever or corrupt data.
//
// The package builds a canonical Identity for any file-like endpoint, either a
// filesystem path or one of the three standard streams. Two identities compare
// equal exactly when they name the same underlying storage object, regardless
// of how each endpoint was spelled or opened. Identity is a platform-selected
// type: device and inode on Unix systems, volume serial and file index on
// Windows. Callers should treat its shape as opaque and rely only on equality
// and the serialized field names.
//
// Standard streams are frequently attached to terminals or pipes, which have
// no reusable storage identity. Classify resolves a stream into a tri-state
// answer (identifiable with its identity, or not identifiable with the reason)
// instead of failing, so "stdout is a terminal" stays a normal condition.
//
// FindCycle and HasCycle compare input identities against output identities
// with a plain full scan; the expected set sizes are a handful of command-line
// arguments and the three standard streams.
//
// An Identity is a point-in-time snapshot. If a file is deleted and the OS
// reuses its storage slot, a cached Identity can collide with the new
// occupant; construct identities close to the point of comparison.
package iocycle
