package services

import (
	"errors"
	"sync"
	"time"

	"creditnext/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// CircuitBreakerConfig guards one external collaborator, such as the LLM structurer
type CircuitBreakerConfig struct {
	Name            string
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange is called outside the lock after every transition
	OnStateChange func(name string, from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:            name,
		MaxFailures:     3,
		ResetTimeout:    60 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

type transition struct {
	from, to models.CircuitBreakerState
}

func (cb *CircuitBreaker) notify(t *transition) {
	if t == nil || cb.config.OnStateChange == nil {
		return
	}
	cb.config.OnStateChange(cb.config.Name, t.from, t.to)
}

// IsOpen reports whether calls must be skipped; an expired open breaker moves to half-open and lets one through
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	var t *transition
	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		t = cb.setState(StateHalfOpen)
	}
	open := cb.state == StateOpen
	cb.mu.Unlock()

	cb.notify(t)
	return open
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	var t *transition
	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			t = cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
	cb.mu.Unlock()

	cb.notify(t)
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	var t *transition
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		t = cb.setState(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			t = cb.setState(StateOpen)
		}
	}
	cb.mu.Unlock()

	cb.notify(t)
}

// setState must be called with mu held
func (cb *CircuitBreaker) setState(to models.CircuitBreakerState) *transition {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}
	if from == to {
		return nil
	}
	return &transition{from: from, to: to}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	t := cb.setState(StateClosed)
	cb.mu.Unlock()

	cb.notify(t)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
