// Package random provides seed generation helpers for the game RNGs.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns a non-zero seed, falling back to the clock if crypto/rand fails.
func Seed() int64 {
	seed, err := NewSeed()
	if err != nil || seed == 0 {
		seed = time.Now().UnixNano()
	}
	return seed
}
