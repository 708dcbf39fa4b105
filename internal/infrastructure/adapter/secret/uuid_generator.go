package secret

import (
	"strings"

	"github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/google/uuid"
)

// UUIDGenerator builds tokens and salts from random (version 4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new generator
func NewUUIDGenerator() core.SecretGenerator {
	return UUIDGenerator{}
}

// Token returns 64 hex characters taken from two random UUIDs
func (UUIDGenerator) Token() string {
	return compact(uuid.New()) + compact(uuid.New())
}

// Salt returns 32 hex characters
func (UUIDGenerator) Salt() string {
	return compact(uuid.New())
}

func compact(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
