package order

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

var idPattern = regexp.MustCompile(`^ORD[A-Z0-9]{9}$`)

func TestRandomIDGenerator_Generate(t *testing.T) {
	g := NewRandomIDGenerator()

	seen := make(map[string]struct{})
	for range 1000 {
		id := g.Generate()
		assert.Regexp(t, idPattern, id)
		seen[id] = struct{}{}
	}

	// 36^9 possible suffixes; a collision within 1000 draws would point at a broken source.
	assert.Len(t, seen, 1000)
}

func TestRandomIDGenerator_Concurrent(t *testing.T) {
	g := NewRandomIDGenerator()

	var wg sync.WaitGroup
	ids := make(chan string, 64)
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Generate()
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		assert.Regexp(t, idPattern, id)
	}
}

func TestNewSeededIDGenerator(t *testing.T) {
	a := NewSeededIDGenerator(1, 2)
	b := NewSeededIDGenerator(1, 2)

	for range 10 {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestRandomIDGenerator_Format(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed1 := rapid.Uint64().Draw(t, "seed1")
		seed2 := rapid.Uint64().Draw(t, "seed2")

		id := NewSeededIDGenerator(seed1, seed2).Generate()
		if !idPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, idPattern)
		}
	})
}

func TestRandomIDGenerator_AlphabetBounds(t *testing.T) {
	cases := map[string]struct {
		pick     int
		expected string
	}{
		"FirstSymbol": {pick: 0, expected: "ORD000000000"},
		"LastSymbol":  {pick: 35, expected: "ORDZZZZZZZZZ"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := &RandomIDGenerator{intN: func(n int) int {
				assert.Equal(t, 36, n)
				return tc.pick
			}}
			assert.Equal(t, tc.expected, g.Generate())
		})
	}
}
