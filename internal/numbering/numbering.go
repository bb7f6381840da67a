// Package numbering produces invoice and pro-forma numbers of the form
// PREFIX-YYYY-NNNN.
//
// RandomGenerator is a preview-grade fallback: its numbers are not unique.
// Callers that issue fiscal documents must supply their own number or use a
// sequence backed by shared storage such as RedisSequence.
package numbering

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"sync"
)

const (
	InvoicePrefix  = "F"
	ProformaPrefix = "PF"
)

type Generator interface {
	Next(ctx context.Context, prefix string, year int) (string, error)
}

func Format(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, year, seq)
}

var numberPattern = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d{4,})$`)

// Parse splits a number produced by Format.
func Parse(number string) (prefix string, year int, seq int64, err error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return "", 0, 0, fmt.Errorf("malformed document number %q", number)
	}
	year, _ = strconv.Atoi(m[2])
	seq, _ = strconv.ParseInt(m[3], 10, 64)
	return m[1], year, seq, nil
}

// RandomGenerator draws the sequence part uniformly from 1000..9999.
type RandomGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomGenerator(seed uint64) *RandomGenerator {
	return &RandomGenerator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *RandomGenerator) Next(_ context.Context, prefix string, year int) (string, error) {
	g.mu.Lock()
	seq := 1000 + g.rnd.Int64N(9000)
	g.mu.Unlock()
	return Format(prefix, year, seq), nil
}
