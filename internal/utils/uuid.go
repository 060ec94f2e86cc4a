package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for notes.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 strings, so notes created one
// after another also sort by ID.
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
