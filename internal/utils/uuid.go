package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new persons, speeches and sentences.
// Version 7 identifiers are time ordered, which keeps B-tree inserts local.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}
