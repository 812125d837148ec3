package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures so leaks can be asserted on
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() { close(done) }()
		<-done
	})
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	checker.Check(1)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	start := time.Now()
	checker.Check(0)

	assert.True(t, rec.failed)
	assert.GreaterOrEqual(t, time.Since(start), drainTimeout)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() { time.Sleep(50 * time.Millisecond) }()

	checker.Check(0)
}
