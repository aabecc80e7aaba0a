package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Unavailable is the degraded-mode Store used when no database
// connection could be established at startup. Reads yield empty
// results so the public site still renders; writes fail with
// ErrUnavailable so submissions are never silently dropped.
type Unavailable struct{}

func (Unavailable) InsertOne(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) FindMany(context.Context, string, bson.M) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (Unavailable) FindLatest(context.Context, string) (bson.M, error) {
	return nil, nil
}

func (Unavailable) ReplaceSingleton(context.Context, string, any) error {
	return ErrUnavailable
}

func (Unavailable) IsEmpty(context.Context, string) (bool, error) {
	return false, ErrUnavailable
}

func (Unavailable) Collections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Ping(context.Context) error {
	return ErrUnavailable
}

func (Unavailable) Name() string {
	return ""
}
