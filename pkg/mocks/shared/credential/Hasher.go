package mocks

import "github.com/stretchr/testify/mock"

// Hasher is a mock type for the Hasher type
type Hasher struct {
	mock.Mock
}

// Hash provides a mock function with given fields: secret
func (_m *Hasher) Hash(secret string) (string, error) {
	ret := _m.Called(secret)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(secret)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(secret)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Verify provides a mock function with given fields: secret, digest
func (_m *Hasher) Verify(secret string, digest string) bool {
	ret := _m.Called(secret, digest)

	var r0 bool
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(secret, digest)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}
