package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Limiter is a mock type for the Limiter type
type Limiter struct {
	mock.Mock
}

// Disconnect provides a mock function with given fields: ctx
func (_m *Limiter) Disconnect(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Hit provides a mock function with given fields: key
func (_m *Limiter) Hit(key string) int64 {
	ret := _m.Called(key)

	var r0 int64
	if rf, ok := ret.Get(0).(func(string) int64); ok {
		r0 = rf(key)
	} else {
		r0 = ret.Get(0).(int64)
	}

	return r0
}

// IsLimited provides a mock function with given fields: key
func (_m *Limiter) IsLimited(key string) bool {
	ret := _m.Called(key)

	var r0 bool
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(key)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// Reset provides a mock function with given fields: key
func (_m *Limiter) Reset(key string) {
	_m.Called(key)
}
