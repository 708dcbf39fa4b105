package auth

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// DefaultBcryptCost is the work factor used when none is configured
const DefaultBcryptCost = 12

// PasswordHasher hashes new passwords with bcrypt and still accepts the
// salted sha512 hashes of older rows
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a hasher with the given bcrypt cost
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than 72 bytes
// fail with errs.ErrPasswordTooLong.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("hash password: %w", errs.ErrPasswordTooLong)
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks password against the user's stored hash. legacy is true when
// the match was against an old sha512 hash that should be upgraded.
func (h *PasswordHasher) Verify(user *entity.User, password string) (ok bool, legacy bool) {
	if user == nil || user.PasswordHash == "" || password == "" {
		return false, false
	}

	if isBcrypt(user.PasswordHash) {
		err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
		return err == nil, false
	}

	expected := LegacyHash(user.Salt, password)
	match := subtle.ConstantTimeCompare([]byte(strings.ToLower(user.PasswordHash)), []byte(expected)) == 1
	return match, match
}

// LegacyHash computes hex(sha512(salt + password))
func LegacyHash(salt, password string) string {
	sum := sha512.Sum512([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
