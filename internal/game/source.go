package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
)

// Source draws the secret for a session.
// Between returns a uniformly distributed integer in [min, max] inclusive.
type Source interface {
	Between(min, max int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Between returns a cryptographically random integer in [min, max].
// Falls back to min if the system entropy source fails.
func (CryptoSource) Between(min, max int) int {
	n, err := crand.Int(crand.Reader, big.NewInt(int64(max-min)+1))
	if err != nil {
		return min
	}
	return min + int(n.Int64())
}

// SeededSource draws from a math/rand generator so runs can be replayed.
// It is safe for concurrent use.
type SeededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a deterministic source for seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Between returns the next integer in [min, max] from the seeded generator.
func (s *SeededSource) Between(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
