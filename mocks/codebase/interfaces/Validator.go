package mocks

import "github.com/stretchr/testify/mock"

// Validator is a mock type for the Validator type
type Validator struct {
	mock.Mock
}

// ValidateDocument provides a mock function with given fields: schemaID, document
func (_m *Validator) ValidateDocument(schemaID string, document []byte) error {
	ret := _m.Called(schemaID, document)

	var r0 error
	if rf, ok := ret.Get(0).(func(string, []byte) error); ok {
		r0 = rf(schemaID, document)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ValidateStruct provides a mock function with given fields: data
func (_m *Validator) ValidateStruct(data interface{}) error {
	ret := _m.Called(data)

	var r0 error
	if rf, ok := ret.Get(0).(func(interface{}) error); ok {
		r0 = rf(data)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
