package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glamora/database"
	"glamora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo creates a ScheduleRepository backed by the "schedules"
// collection.
func NewMongoScheduleRepo() ScheduleRepository {
	coll := database.Collection("schedules")
	return &MongoScheduleRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoScheduleRepo) GetByProviderID(providerID string) (*models.Schedule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sched models.Schedule
	filter := bson.M{"providerId": providerID}
	if err := r.coll.FindOne(ctx, filter).Decode(&sched); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch schedule for provider %s: %w", providerID, err)
	}
	return &sched, nil
}

func (r *MongoScheduleRepo) Upsert(sched *models.Schedule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"providerId": sched.ProviderID}
	update := bson.M{"$set": sched}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert schedule for provider %s: %w", sched.ProviderID, err)
	}
	return nil
}

func (r *MongoScheduleRepo) Delete(providerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return fmt.Errorf("failed to delete schedule for provider %s: %w", providerID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoScheduleRepo) ListProviderIDs() ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"providerId": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ProviderID string `bson:"providerId"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode schedule document: %w", err)
		}
		ids = append(ids, doc.ProviderID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ids, nil
}
