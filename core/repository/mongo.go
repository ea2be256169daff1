package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoBackend inserts records as documents into MongoDB collections.
type MongoBackend struct {
	client   *mongo.Client
	database string
}

// NewMongoBackend wraps a connected client and a database name.
func NewMongoBackend(client *mongo.Client, database string) *MongoBackend {
	return &MongoBackend{client: client, database: database}
}

// Handle returns a handle for the collection named table.
func (b *MongoBackend) Handle(ctx context.Context, table string) (Handle, error) {
	if table == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	coll := b.client.Database(b.database).Collection(table)
	return &mongoHandle{
		collection: table,
		insert: func(ctx context.Context, doc any) (*mongo.InsertOneResult, error) {
			return coll.InsertOne(ctx, doc)
		},
	}, nil
}

// Close disconnects the client.
func (b *MongoBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

type mongoHandle struct {
	collection string
	insert     func(ctx context.Context, doc any) (*mongo.InsertOneResult, error)
}

// InsertOne inserts rec and returns the document _id.
func (h *mongoHandle) InsertOne(ctx context.Context, rec map[string]any) (any, error) {
	res, err := h.insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", h.collection, err)
	}
	return res.InsertedID, nil
}
