package rng

import (
	cryptorand "crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// genMu serializes the seeded generator. It is held only across the
	// in-memory state advance, never across I/O.
	genMu sync.Mutex
	gen   = rand.New(rand.NewPCG(seed()))

	// fallbackCounter differentiates consecutive fallback fills when the
	// entropy source is unavailable.
	fallbackCounter atomic.Uint64
)

// seed derives generator seed material from the OS entropy source. Without
// entropy it falls back to an arbitrary but changing value built from the
// clock and the process identity.
func seed() (uint64, uint64) {
	var b [16]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])
	}

	lo := uint64(time.Now().UnixNano()) + uint64(os.Getpid())

	return lo, lo ^ fallbackCounter.Add(1)
}

// Reseed shuffles the seeded generator with fresh seed material.
// N.B. always reseed after getting forked.
func Reseed() {
	s1, s2 := seed()
	reseedWith(s1, s2)
}

func reseedWith(s1, s2 uint64) {
	genMu.Lock()
	defer genMu.Unlock()

	gen = rand.New(rand.NewPCG(s1, s2))
}

// GetNext returns the next value from the seeded generator.
func GetNext() uint64 {
	genMu.Lock()
	defer genMu.Unlock()

	return gen.Uint64()
}

// GetBytes draws length bytes directly from the OS entropy source, bypassing
// the seeded generator. If the source fails, the buffer is filled from the
// clock and a counter so callers still receive length bytes, at the cost of
// predictability.
func GetBytes(length int) []byte {
	if length <= 0 {
		return []byte{}
	}

	b := make([]byte, length)
	if _, err := cryptorand.Read(b); err != nil {
		fallbackFill(b)
	}

	return b
}

func fallbackFill(b []byte) {
	var word [8]byte

	for off := 0; off < len(b); off += len(word) {
		v := uint64(time.Now().UnixNano()) ^ fallbackCounter.Add(1)<<32
		binary.LittleEndian.PutUint64(word[:], v)
		copy(b[off:], word[:])
	}
}

// GetB64String generates a random string in Base64 of exactly length
// characters. Note: may contain '/' characters.
func GetB64String(length int) string {
	if length <= 0 {
		return ""
	}

	s := base64.StdEncoding.EncodeToString(GetBytes(length))

	return s[:length]
}

// GetFilename generates a random string of exactly length characters that is
// safe as a single path segment.
func GetFilename(length int) string {
	return strings.ReplaceAll(GetB64String(length), "/", "_")
}
