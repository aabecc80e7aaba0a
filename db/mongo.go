package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the production Store backed by a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a
// ping. The caller decides what to do on failure; startup never depends
// on this succeeding.
func Connect(cfg Config) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Mongo{client: client, db: client.Database(cfg.Name)}, nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (m *Mongo) FindMany(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

func (m *Mongo) FindLatest(ctx context.Context, collection string) (bson.M, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})

	var doc bson.M
	err := m.db.Collection(collection).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) ReplaceSingleton(ctx context.Context, collection string, doc any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.db.Collection(collection).ReplaceOne(ctx, bson.M{}, doc, opts)
	return err
}

func (m *Mongo) IsEmpty(ctx context.Context, collection string) (bool, error) {
	count, err := m.db.Collection(collection).CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

// Disconnect releases the client; called once during server shutdown.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
