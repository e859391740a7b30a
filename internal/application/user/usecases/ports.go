package usecases

// PasswordHasher hashes plaintext passwords before they reach the domain.
// Verification is a concern of the (separate) authentication surface.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
