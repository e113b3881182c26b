// Package testutil holds deterministic random sources and loggers for tests.
package testutil

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// NewTestRNG returns a seeded PCG-backed generator, so a seed always yields
// the same draws.
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// ScriptedSource replays a fixed sequence of Intn results, cycling when it
// runs out. Shuffle leaves the order untouched so seating is predictable.
// It satisfies core.RandomSource.
type ScriptedSource struct {
	values []int
	pos    int
	calls  int
}

// NewScriptedSource returns a source that yields values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Intn(n int) int {
	if len(s.values) == 0 {
		panic("testutil: ScriptedSource has no values")
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	s.calls++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: scripted value %d out of range [0,%d)", v, n))
	}
	return v
}

func (s *ScriptedSource) Shuffle(n int, swap func(i, j int)) {}

// Calls reports how many Intn draws were made.
func (s *ScriptedSource) Calls() int { return s.calls }

// ReverseShuffleSource behaves like ScriptedSource but reverses the order on Shuffle.
type ReverseShuffleSource struct {
	*ScriptedSource
}

func (s ReverseShuffleSource) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
