package store

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces entry identifiers. Identifiers only need to be unique
// for the lifetime of the process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// CounterGenerator issues "1", "2", "3", ... Handy for deterministic tests.
type CounterGenerator struct {
	n atomic.Uint64
}

func (g *CounterGenerator) NewID() string {
	return strconv.FormatUint(g.n.Add(1), 10)
}
