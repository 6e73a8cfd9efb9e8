package session

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// Verifier checks a credential pair. It is the seam where a real
// authentication backend would plug in; the storefront ships with a single
// local admin account.
type Verifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// StaticVerifier accepts exactly one username with a bcrypt-hashed password.
type StaticVerifier struct {
	Username     string
	PasswordHash []byte
}

// NewStaticVerifier hashes password and returns a verifier for the pair.
func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{Username: username, PasswordHash: hash}, nil
}

// Verify reports whether the pair matches. There is deliberately no
// distinction between an unknown user and a wrong password.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) bool {
	if username != v.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.PasswordHash, []byte(password)) == nil
}

// Default admin credentials for the local storefront. A deployment overrides
// these through configuration.
const (
	DefaultAdminUser     = "admin"
	DefaultAdminPassword = "admin123"
)
