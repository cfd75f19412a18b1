package utils

import "github.com/google/uuid"

// UUIDGenerator issues trace ids. Version 7 ids sort by creation time, which
// keeps log lines of one request adjacent when ordered by trace id.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate falls back to a random version 4 id when no v7 id can be made.
func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
