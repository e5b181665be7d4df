package interfaces

type (
	// Limiter abstraction, count failed attempt of one key
	Limiter interface {
		IsLimited(key string) bool
		Hit(key string) int64
		Reset(key string)
		Closer
	}
)
