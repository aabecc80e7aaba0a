package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by write operations when no database
// connection exists. Read operations degrade to empty results instead.
var ErrUnavailable = errors.New("database not available")

// Config carries the connection settings read from the environment.
type Config struct {
	URI  string // DATABASE_URL
	Name string // DATABASE_NAME
}

// Store is the document-store contract shared by the Mongo, Memory and
// Unavailable implementations. Documents are schemaless maps on the way
// out; inserts accept any bson-marshalable value.
type Store interface {
	// InsertOne persists doc and returns the generated id as a hex string.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
	// FindMany returns all documents matching the exact-match filter,
	// in insertion order. The result is never nil.
	FindMany(ctx context.Context, collection string, filter bson.M) ([]bson.M, error)
	// FindLatest returns the most recently inserted document by reverse
	// identifier order, or nil if the collection is empty.
	FindLatest(ctx context.Context, collection string) (bson.M, error)
	// ReplaceSingleton upserts doc with an always-matching filter so the
	// collection holds exactly one document afterwards.
	ReplaceSingleton(ctx context.Context, collection string, doc any) error
	// IsEmpty reports whether the collection holds zero documents.
	IsEmpty(ctx context.Context, collection string) (bool, error)
	// Collections lists the collection names currently in the database.
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
}
