// Package utils provides general-purpose helpers shared across the
// application, currently the note ID generators.
package utils

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

//go:generate mockgen -source=uuid.go -destination=../mock/id_generator_mock.go -package=mock

// IDGenerator produces opaque note identifiers. Implementations must never
// return the same value twice within a process.
type IDGenerator interface {
	Generate() string
}

// Supported generator names, as accepted by NewIDGenerator.
const (
	GeneratorUUID = "uuid"
	GeneratorULID = "ulid"
)

// NewIDGenerator returns the generator registered under name. An empty name
// selects UUIDv7. Unknown names return ErrUnknownIDGenerator.
func NewIDGenerator(name string) (IDGenerator, error) {
	switch name {
	case "", GeneratorUUID:
		return NewUUIDGenerator(), nil
	case GeneratorULID:
		return NewULIDGenerator(), nil
	default:
		return nil, ErrUnknownIDGenerator
	}
}

// UUIDGenerator generates time-ordered UUIDv7 strings.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ULIDGenerator generates lexicographically sortable ULIDs. Monotonic
// entropy keeps IDs created within the same millisecond strictly increasing.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
