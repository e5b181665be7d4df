package types

// Server is the type returned by a classifier server
type Server string

// Service name type
type Service string

// Module name type
type Module string

const (
	// REST server
	REST Server = "rest"
)
