package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/festy23/scoreboard/internal/snapshot/model"
)

// CollectionName is the MongoDB collection holding snapshots.
const CollectionName = "snapshots"

type mongoRepository struct {
	coll   *mongo.Collection
	key    string
	logger *zap.SugaredLogger
}

// NewMongo creates a snapshot repository backed by a MongoDB collection.
func NewMongo(coll *mongo.Collection, key string, logger *zap.SugaredLogger) Repository {
	if key == "" {
		key = DefaultKey
	}
	return &mongoRepository{coll: coll, key: key, logger: logger}
}

// ConnectMongo opens a client and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}
	return client, nil
}

// Load returns the stored snapshot.
func (r *mongoRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	var rec model.Record
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: r.key}}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, err
	}

	r.logger.Debugw("snapshot loaded", "key", r.key, "updated_at", rec.UpdatedAt)
	return Decode([]byte(rec.Payload))
}

// Save replaces the snapshot document, inserting it on first write.
func (r *mongoRepository) Save(ctx context.Context, s *model.Snapshot) error {
	payload, err := Encode(s)
	if err != nil {
		return err
	}

	rec := model.Record{SnapshotKey: r.key, Payload: payload, UpdatedAt: time.Now().UTC()}
	_, err = r.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: r.key}},
		rec,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Ping checks the server connection.
func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
