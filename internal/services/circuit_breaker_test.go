package services

import (
	"errors"
	"testing"
	"time"

	"eventhub/internal/config"

	"github.com/stretchr/testify/assert"
)

var errStore = errors.New("store failed")

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 3, ResetTimeout: time.Hour, HalfOpenMaxSucc: 1})

	for i := 0; i < 3; i++ {
		err := cb.Call(func() error { return errStore })
		assert.ErrorIs(t, err, errStore)
	}

	assert.True(t, cb.IsOpen())
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Call(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 3})

	_ = cb.Call(func() error { return errStore })
	_ = cb.Call(func() error { return errStore })
	assert.Equal(t, 2, cb.Failures())

	assert.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, 0, cb.Failures())
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Millisecond, HalfOpenMaxSucc: 2})

	_ = cb.Call(func() error { return errStore })
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(5 * time.Millisecond)

	assert.False(t, cb.IsOpen())
	assert.Equal(t, StateHalfOpen, cb.State())

	assert.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, StateHalfOpen, cb.State())
	assert.NoError(t, cb.Call(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Millisecond, HalfOpenMaxSucc: 2})

	_ = cb.Call(func() error { return errStore })
	time.Sleep(5 * time.Millisecond)

	err := cb.Call(func() error { return errStore })
	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{MaxFailures: 1, ResetTimeout: time.Hour})

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	cb.Reset()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 0, cb.Failures())
	assert.Equal(t, "closed", cb.State().String())
}

func TestNewCircuitBreaker_Defaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{}).(*CircuitBreaker)
	assert.Equal(t, DefaultCircuitBreakerConfig(), cb.config)
}

func TestImportBreakerConfig(t *testing.T) {
	breaker := ImportBreakerConfig(config.ImportConfig{MaxStoreFailures: 7, StoreRetryAfter: time.Minute})

	assert.Equal(t, 7, breaker.MaxFailures)
	assert.Equal(t, time.Minute, breaker.ResetTimeout)
	assert.Equal(t, DefaultCircuitBreakerConfig().HalfOpenMaxSucc, breaker.HalfOpenMaxSucc)
}
