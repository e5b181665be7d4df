package interfaces

import (
	"context"

	"github.com/gomodule/redigo/redis"
	"go.mongodb.org/mongo-driver/mongo"
)

// Closer release connection on shutdown
type Closer interface {
	Disconnect(ctx context.Context) error
}

// MongoDatabase meeting store connection, read and write may point to same host
type MongoDatabase interface {
	ReadDB() *mongo.Database
	WriteDB() *mongo.Database
	Health() map[string]error
	Closer
}

// RedisPool attempt limiter backend
type RedisPool interface {
	Pool() *redis.Pool
	Health() map[string]error
	Closer
}
