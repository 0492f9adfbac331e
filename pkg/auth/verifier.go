package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by verifiers that actually check
// passwords. The default storefront verifier never returns it.
var ErrInvalidCredentials = errors.New("invalid email or password")

// CredentialVerifier decides whether an email/password pair is acceptable.
// The store validates presence of both fields before calling Verify, so
// implementations only judge the pair itself.
type CredentialVerifier interface {
	Verify(email, password string) error
}

// AllowAll accepts every non-empty pair. This is the storefront's stock
// behavior: sign-in is a local mock with no credential store behind it.
type AllowAll struct{}

func (AllowAll) Verify(email, password string) error { return nil }

// BcryptVerifier checks passwords against stored bcrypt hashes, keyed by
// email. Dropping it in place of AllowAll turns the mock into a real check
// without touching the store contract.
type BcryptVerifier struct {
	hashes map[string]string
}

func NewBcryptVerifier(hashesByEmail map[string]string) *BcryptVerifier {
	return &BcryptVerifier{hashes: hashesByEmail}
}

// HashPassword produces a bcrypt hash suitable for NewBcryptVerifier.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (v *BcryptVerifier) Verify(email, password string) error {
	hash, ok := v.hashes[email]
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
