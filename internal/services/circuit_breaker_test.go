package services

import (
	"testing"
	"time"

	"creditnext/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type breakerClock struct{ now time.Time }

func (c *breakerClock) Now() time.Time { return c.now }

func newTestBreaker(t *testing.T) (*CircuitBreaker, *breakerClock, *[]string) {
	t.Helper()
	clock := &breakerClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	var transitions []string

	cfg := DefaultCircuitBreakerConfig("llm")
	cfg.OnStateChange = func(name string, from, to models.CircuitBreakerState) {
		require.Equal(t, "llm", name)
		transitions = append(transitions, from.String()+"->"+to.String())
	}
	cb := NewCircuitBreaker(cfg)
	cb.now = clock.Now
	return cb, clock, &transitions
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb, _, transitions := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 2, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.GetState())
	assert.Equal(t, []string{"closed->open"}, *transitions)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _, transitions := newTestBreaker(t)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())
	assert.Empty(t, *transitions)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb, clock, transitions := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	require.True(t, cb.IsOpen())

	clock.now = clock.now.Add(30 * time.Second)
	assert.True(t, cb.IsOpen(), "still inside the reset timeout")

	clock.now = clock.now.Add(31 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.GetState())
	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, *transitions)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, clock, _ := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}
	clock.now = clock.now.Add(2 * time.Minute)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb, _, transitions := newTestBreaker(t)
	for i := 0; i < 3; i++ {
		cb.RecordFailure()
	}

	cb.Reset()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.GetFailureCount())
	assert.Equal(t, []string{"closed->open", "open->closed"}, *transitions)

	cb.Reset()
	assert.Len(t, *transitions, 2, "reset of a closed breaker is not a transition")
}

func TestCircuitBreaker_SatisfiesInterfaces(t *testing.T) {
	var _ CircuitBreakerInterface = NewCircuitBreaker(DefaultCircuitBreakerConfig("x"))
}
