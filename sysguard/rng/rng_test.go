package rng

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilename_ExactLengthNoSlash(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 16, 63, 64, 100}

	for _, length := range lengths {
		name := GetFilename(length)

		assert.Len(t, name, length, "length %d", length)
		assert.NotContains(t, name, "/", "length %d", length)
	}
}

func TestGetB64String_ExactLength(t *testing.T) {
	for _, length := range []int{0, 1, 5, 64, 333} {
		assert.Len(t, GetB64String(length), length)
	}
}

func TestGetBytes_Length(t *testing.T) {
	assert.Empty(t, GetBytes(0))
	assert.Empty(t, GetBytes(-3))
	assert.Len(t, GetBytes(1), 1)
	assert.Len(t, GetBytes(4096), 4096)
}

func TestGetBytes_NotConstant(t *testing.T) {
	a := GetBytes(32)
	b := GetBytes(32)

	assert.NotEqual(t, a, b)
}

func TestGetNext_SerializedAcrossGoroutines(t *testing.T) {
	const goroutines = 16
	const draws = 200

	var wg sync.WaitGroup

	results := make([][]uint64, goroutines)

	for i := range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			vals := make([]uint64, 0, draws)
			for range draws {
				vals = append(vals, GetNext())
			}

			results[i] = vals
		}()
	}

	wg.Wait()

	seen := make(map[uint64]int)
	for _, vals := range results {
		for _, v := range vals {
			seen[v]++
		}
	}

	// Duplicate draws across goroutines would indicate overlapping
	// generator state. A 64-bit generator repeating within 3200 draws is
	// effectively impossible.
	assert.Len(t, seen, goroutines*draws)
}

func TestReseed_DistinctSeedsDiverge(t *testing.T) {
	// Distinct-seed injection stands in for true forking: two processes
	// seeded differently must produce diverging sequences.
	reseedWith(1, 100)

	first := make([]uint64, 16)
	for i := range first {
		first[i] = GetNext()
	}

	reseedWith(2, 200)

	second := make([]uint64, 16)
	for i := range second {
		second[i] = GetNext()
	}

	assert.NotEqual(t, first, second)

	// Same seed material reproduces the sequence exactly.
	reseedWith(1, 100)

	replay := make([]uint64, 16)
	for i := range replay {
		replay[i] = GetNext()
	}

	assert.Equal(t, first, replay)

	Reseed()
}

func TestReseed_ShufflesSequence(t *testing.T) {
	Reseed()
	a := GetNext()

	Reseed()
	b := GetNext()

	// Statistical property: colliding first draws after independent
	// reseeds are overwhelmingly unlikely.
	assert.NotEqual(t, a, b)
}

func TestGetFilename_UsesBase64Alphabet(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+_="

	name := GetFilename(256)
	require.Len(t, name, 256)

	for _, c := range name {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}
