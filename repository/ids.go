package repository

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// IDGenerator produces identifiers for entities saved without one.
type IDGenerator interface {
	Generate() (string, error)
	Type() string
}

// UUIDGenerator generates UUID v4 values.
type UUIDGenerator struct{}

func (g UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate UUID: %w", err)
	}
	return id.String(), nil
}

func (g UUIDGenerator) Type() string { return "uuid" }

// ULIDGenerator generates monotonic ULID values.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now()), g.entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id.String(), nil
}

func (g *ULIDGenerator) Type() string { return "ulid" }
