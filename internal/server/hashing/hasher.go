// Package hashing provides one-way password hashing and verification.
// The Hasher interface abstracts the underlying algorithm, keeping the
// auth service free of primitive details.
package hashing

// Hasher hashes plaintext passwords and verifies candidates against
// previously produced hashes.
type Hasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls with
	// the same plaintext produce different hashes.
	Hash(password string) (string, error)

	// Verify reports whether hash was produced from password. It returns
	// false on malformed hash input and never panics.
	Verify(password, hash string) bool
}
