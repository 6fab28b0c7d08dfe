package service

// PasswordHasher defines the interface for password hashing operations.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a plaintext password matches a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that are too weak to store.
	ValidatePasswordStrength(password string) error
}
