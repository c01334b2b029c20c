package hasher

import "golang.org/x/crypto/bcrypt"

// BcryptHasher is the one-way, salted password hasher used by the service.
type BcryptHasher struct {
	cost int
}

// New creates a BcryptHasher with the default bcrypt cost.
func New() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash derives an opaque hash from a plaintext password.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches a previously produced hash.
func (h *BcryptHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
