package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/golangid/meetup/candihelper"
	"github.com/golangid/meetup/config/env"
	"github.com/golangid/meetup/logger"
)

// MongoInstance read & write database handle
type MongoInstance struct {
	DBRead, DBWrite *mongo.Database
}

// ReadDB method
func (m *MongoInstance) ReadDB() *mongo.Database {
	return m.DBRead
}

// WriteDB method
func (m *MongoInstance) WriteDB() *mongo.Database {
	return m.DBWrite
}

// Health ping read & write connection
func (m *MongoInstance) Health() map[string]error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	mErr := make(map[string]error)
	if m.DBRead != nil {
		mErr["mongo_read"] = m.DBRead.Client().Ping(ctx, readpref.PrimaryPreferred())
	}
	if m.DBWrite != nil {
		mErr["mongo_write"] = m.DBWrite.Client().Ping(ctx, readpref.Primary())
	}
	return mErr
}

// Disconnect close all connection
func (m *MongoInstance) Disconnect(ctx context.Context) (err error) {
	defer logger.LogWithDefer("\x1b[33;5mmongodb\x1b[0m: disconnect...")()

	if m.DBWrite != nil {
		if err := m.DBWrite.Client().Disconnect(ctx); err != nil {
			return err
		}
	}
	if m.DBRead != nil && m.DBRead != m.DBWrite {
		err = m.DBRead.Client().Disconnect(ctx)
	}
	return
}

// InitMongoDB return mongo db read & write instance from environment:
// MONGODB_HOST_WRITE, MONGODB_HOST_READ
// if want to create single connection, use MONGODB_HOST_WRITE and set empty for MONGODB_HOST_READ
func InitMongoDB(ctx context.Context, opts ...*options.ClientOptions) *MongoInstance {
	defer logger.LogWithDefer("Load MongoDB connection...")()

	connReadDSN, connWriteDSN := env.BaseEnv().DbMongoReadHost, env.BaseEnv().DbMongoWriteHost
	dbName := env.BaseEnv().DbMongoDatabaseName
	if connReadDSN == "" {
		db := ConnectMongoDB(ctx, connWriteDSN, dbName, opts...)
		return &MongoInstance{DBRead: db, DBWrite: db}
	}

	return &MongoInstance{
		DBRead:  ConnectMongoDB(ctx, connReadDSN, dbName, opts...),
		DBWrite: ConnectMongoDB(ctx, connWriteDSN, dbName, opts...),
	}
}

// ConnectMongoDB connect to mongodb with dsn, database name in dsn take precedence over defaultDBName
func ConnectMongoDB(ctx context.Context, dsn, defaultDBName string, opts ...*options.ClientOptions) *mongo.Database {
	connDSN, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		log.Panicf("mongodb: %v, conn: %s", err, candihelper.MaskingPasswordURL(dsn))
	}

	clientOpts := []*options.ClientOptions{
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10 * time.Second),
		options.Client().SetServerSelectionTimeout(10 * time.Second),
	}
	clientOpts = append(clientOpts, opts...)

	client, err := mongo.Connect(ctx, clientOpts...)
	if err != nil {
		log.Panicf("mongodb: %v, conn: %s", err, candihelper.MaskingPasswordURL(dsn))
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Panicf("mongodb ping: %v", err)
	}

	dbName := connDSN.Database
	if dbName == "" {
		dbName = defaultDBName
	}
	return client.Database(dbName)
}
