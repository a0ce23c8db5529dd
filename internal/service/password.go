package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the credential capability: hash a plaintext secret for
// storage and verify a supplied one against the stored form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(stored, supplied string) bool
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptHasher) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
