package ident

import (
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// EncodeID renders number as lowercase hexadecimal, zero-padded to at least
// padding digits, without prefix.
func EncodeID(number uint64, padding int) string {
	return fmt.Sprintf("%0*x", padding, number)
}

// DecodeID parses the longest leading hexadecimal run of s. An empty or fully
// non-hexadecimal input yields 0, which callers must treat as an "unknown"
// sentinel rather than an encoded zero.
func DecodeID(s string) uint64 {
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}

	if end == 0 {
		return 0
	}

	id, err := strconv.ParseUint(s[:end], 16, 64)
	if err != nil {
		return 0
	}

	return id
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}

var uniqueCounter atomic.Uint64

// UniqueID composes the process identity with an in-process counter. The
// result is unique for the lifetime of this process and distinguishable
// across concurrently running sibling processes.
func UniqueID() string {
	n := uniqueCounter.Add(1) - 1

	return strconv.Itoa(os.Getpid()) + "/" + strconv.FormatUint(n, 10)
}

// NewCorrelationID generates a time-ordered UUIDv7 suitable for request and
// job correlation.
func NewCorrelationID() (uuid.UUID, error) {
	return uuid.NewV7()
}
