// AngelaMos | 2026
// repository.go

package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litoralverde/training-api/internal/core"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	ListByUser(ctx context.Context, userID string) ([]SectionProgress, error)
	Upsert(
		ctx context.Context,
		userID, sectionID string,
		completed bool,
		completedAt *time.Time,
	) (*SectionProgress, error)
}

type repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{c: db.Collection("progress")}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "section_id", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("idx_progress_user_section"),
	})
	if err != nil {
		return fmt.Errorf("create progress indexes: %w", err)
	}
	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]SectionProgress, error) {
	cursor, err := r.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	var records []SectionProgress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	return records, nil
}

// Upsert performs the single-record state transition for a (user,
// section) pair: update in place when a record exists, insert
// otherwise. completed_at is written when completing and removed when
// un-completing. Concurrent calls for the same pair race with
// last-write-wins, which is acceptable because the final state depends
// only on the last payload.
func (r *repository) Upsert(
	ctx context.Context,
	userID, sectionID string,
	completed bool,
	completedAt *time.Time,
) (*SectionProgress, error) {
	filter := bson.M{"user_id": userID, "section_id": sectionID}

	set := bson.M{"completed": completed}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"user_id":    userID,
			"section_id": sectionID,
		},
	}

	if completed && completedAt != nil {
		set["completed_at"] = *completedAt
	} else {
		update["$unset"] = bson.M{"completed_at": ""}
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record SectionProgress
	err := r.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("upsert progress: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	return &record, nil
}
