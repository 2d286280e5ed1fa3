// Package dice provides scripted randomness for deterministic game tests.
package dice

import "testing"

// Script is a utils.Roller that replays fixed values in order.
// Intn values are returned as given and must already be below n;
// Float64 values are returned as given.
type Script struct {
	t      testing.TB
	Ints   []int
	Floats []float64
}

// NewScript creates a Script bound to t so that an exhausted script fails the test
func NewScript(t testing.TB, ints []int, floats []float64) *Script {
	return &Script{t: t, Ints: ints, Floats: floats}
}

// Intn returns the next scripted integer
func (s *Script) Intn(n int) int {
	s.t.Helper()
	if len(s.Ints) == 0 {
		s.t.Fatalf("dice: Intn(%d) called with no scripted ints left", n)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("dice: scripted int %d out of range [0,%d)", v, n)
	}
	return v
}

// Float64 returns the next scripted float
func (s *Script) Float64() float64 {
	s.t.Helper()
	if len(s.Floats) == 0 {
		s.t.Fatalf("dice: Float64 called with no scripted floats left")
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Done reports whether every scripted value was consumed
func (s *Script) Done() bool {
	return len(s.Ints) == 0 && len(s.Floats) == 0
}
