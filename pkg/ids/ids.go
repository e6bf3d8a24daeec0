// Package ids generates element ids for elements rendered without one.
package ids

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// SuffixLength is the number of hex characters appended to the prefix.
const SuffixLength = 16

var (
	mu        sync.RWMutex
	generator = randomID
)

// Generate returns prefix followed by a random lowercase hex suffix.
func Generate(prefix string) string {
	mu.RLock()
	fn := generator
	mu.RUnlock()
	return fn(prefix)
}

// SetGenerator replaces the id generator and returns a function restoring the
// previous one. Intended for tests that need stable ids.
func SetGenerator(fn func(prefix string) string) (restore func()) {
	mu.Lock()
	prev := generator
	generator = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		generator = prev
		mu.Unlock()
	}
}

// Sequence returns a deterministic generator producing prefix1, prefix2, ...
func Sequence() func(prefix string) string {
	var (
		seqMu sync.Mutex
		n     int
	)
	return func(prefix string) string {
		seqMu.Lock()
		defer seqMu.Unlock()
		n++
		return prefix + itoa(n)
	}
}

func randomID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + hex[:SuffixLength]
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := make([]byte, 0, 10)
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}
