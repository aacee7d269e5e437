package order

import (
	"math/rand/v2"
	"strings"
)

const (
	IDPrefix     = "ORD"
	IDSuffixSize = 9

	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// IDGenerator produces order identifiers.
type IDGenerator interface {
	Generate() string
}

// RandomIDGenerator builds IDs from a non-cryptographic pseudo-random source.
// IDs are not checked for uniqueness; two calls may return the same value.
type RandomIDGenerator struct {
	intN func(n int) int
}

// Generate returns IDPrefix followed by IDSuffixSize characters from [0-9A-Z].
func (g *RandomIDGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(len(IDPrefix) + IDSuffixSize)
	sb.WriteString(IDPrefix)
	for range IDSuffixSize {
		sb.WriteByte(idAlphabet[g.intN(len(idAlphabet))])
	}

	return sb.String()
}

// NewRandomIDGenerator returns a generator backed by the goroutine-safe top-level math/rand/v2 source.
func NewRandomIDGenerator() IDGenerator {
	return &RandomIDGenerator{intN: rand.IntN}
}

// NewSeededIDGenerator returns a generator with a deterministic sequence.
// It is not safe for concurrent use and is meant for tests and reproducible runs.
func NewSeededIDGenerator(seed1, seed2 uint64) IDGenerator {
	r := rand.New(rand.NewPCG(seed1, seed2))
	return &RandomIDGenerator{intN: r.IntN}
}
