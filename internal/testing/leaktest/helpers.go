// Package leaktest checks that game sessions, worker pools and front ends
// release their goroutines and memory once they are done.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Settling delays before sampling
const (
	settleBefore = 10 * time.Millisecond
	settleAfter  = 50 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	bytesPerMB   = 1024 * 1024
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleBefore)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check waits for stragglers to exit and fails if more than tolerance
// goroutines outlive the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleAfter * 4)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", g.before, after, leaked, tolerance)
	}
}

// MemoryChecker compares heap allocation against a baseline
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker records the current heap allocation
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: heapAlloc(), t: t}
}

// Check fails if the heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()
	time.Sleep(settleAfter)

	beforeMB := float64(m.before) / bytesPerMB
	afterMB := float64(heapAlloc()) / bytesPerMB
	if growth := afterMB - beforeMB; growth > maxGrowthMB {
		m.t.Errorf("memory leak: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB", beforeMB, afterMB, growth, maxGrowthMB)
	}
}

func heapAlloc() uint64 {
	runtime.GC()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Alloc
}

// CheckNoGoroutineLeak runs fn and fails if it leaves any goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if the heap grew by more than maxGrowthMB
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
