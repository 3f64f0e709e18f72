// Package repository keeps the history of completed predictions in mongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katiamach/weather-forecast-web/internal/config"
	"github.com/katiamach/weather-forecast-web/internal/logger"
	"github.com/katiamach/weather-forecast-web/internal/model"
)

const predictionsCollection = "predictions"

// ErrNoPredictions is returned when a city has no recorded predictions.
var ErrNoPredictions = errors.New("there are no predictions for the given city yet")

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to the configured database and prepares its indexes.
func New(ctx context.Context, cfg config.DBConfig) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := newMongoClient(ctxWithTimeout, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return prepare(ctxWithTimeout, client, cfg.Name, createIndexes)
}

// prepare runs setup on the database and disconnects the client when it fails.
func prepare(ctx context.Context, client *mongo.Client, name string, setup func(context.Context, *mongo.Database) error) (*Repository, error) {
	db := client.Database(name)

	if err := setup(ctx, db); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			logger.Error(fmt.Errorf("failed to disconnect from mongodb: %w", dErr))
		}
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// createIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "key", Value: 1}, {Key: "createdAt", Value: -1}},
	}

	_, err := db.Collection(predictionsCollection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return fmt.Errorf("failed to create city key index: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// InsertPrediction stores a completed prediction.
func (r *Repository) InsertPrediction(ctx context.Context, rec *model.PredictionRecord) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Collection(predictionsCollection).InsertOne(ctxWithTimeout, rec)
	return err
}

// ListPredictions returns the latest predictions stored under a city key,
// newest first.
func (r *Repository) ListPredictions(ctx context.Context, key string, limit int) ([]*model.PredictionRecord, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"key": key}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(limit))

	cur, err := r.db.Collection(predictionsCollection).Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctxWithTimeout)

	var records []*model.PredictionRecord
	for cur.Next(ctxWithTimeout) {
		rec := model.PredictionRecord{}
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoPredictions
	}

	return records, nil
}
