package numbering

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestFormatAndParse(t *testing.T) {
	number := Format(InvoicePrefix, 2025, 42)
	if number != "F-2025-0042" {
		t.Fatalf("Format = %q", number)
	}
	prefix, year, seq, err := Parse("PF-2024-12345")
	if err != nil || prefix != "PF" || year != 2024 || seq != 12345 {
		t.Fatalf("Parse = %q %d %d %v", prefix, year, seq, err)
	}
	if _, _, _, err := Parse("F-25-1"); err == nil {
		t.Fatal("expected malformed number error")
	}
}

func TestRandomGenerator(t *testing.T) {
	ctx := context.Background()
	a, b := NewRandomGenerator(7), NewRandomGenerator(7)
	for i := 0; i < 50; i++ {
		x, _ := a.Next(ctx, ProformaPrefix, 2025)
		y, _ := b.Next(ctx, ProformaPrefix, 2025)
		if x != y {
			t.Fatalf("same seed diverged: %s vs %s", x, y)
		}
		_, year, seq, err := Parse(x)
		if err != nil || year != 2025 || seq < 1000 || seq > 9999 {
			t.Fatalf("generated %q (seq %d, err %v)", x, seq, err)
		}
	}
}

type fakeRedis struct {
	counters map[string]int64
	err      error
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	f.counters[key]++
	return redis.NewIntResult(f.counters[key], nil)
}

func TestRedisSequence(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{counters: map[string]int64{}}
	seq := NewRedisSequence(fake, "")

	first, err := seq.Next(ctx, InvoicePrefix, 2025)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := seq.Next(ctx, InvoicePrefix, 2025)
	other, _ := seq.Next(ctx, InvoicePrefix, 2026)
	if first != "F-2025-0001" || second != "F-2025-0002" || other != "F-2026-0001" {
		t.Fatalf("sequence = %s, %s, %s", first, second, other)
	}
	if fake.counters["docnum:F:2025"] != 2 {
		t.Fatalf("counters = %v", fake.counters)
	}

	fake.err = errors.New("connection refused")
	if _, err := seq.Next(ctx, InvoicePrefix, 2025); err == nil {
		t.Fatal("expected redis error to propagate")
	}
}
