// AngelaMos | 2026
// repository.go

package notes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litoralverde/training-api/internal/core"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, note *Note) error
	ListByUser(
		ctx context.Context,
		userID, sectionID string,
	) ([]Note, error)
	UpdateContent(
		ctx context.Context,
		id, userID, content string,
	) (*Note, error)
	Delete(ctx context.Context, id, userID string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{c: db.Collection("notes")}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "section_id", Value: 1},
		},
		Options: options.Index().SetName("idx_notes_user_section"),
	})
	if err != nil {
		return fmt.Errorf("create note indexes: %w", err)
	}
	return nil
}

func (r *repository) Create(ctx context.Context, note *Note) error {
	if _, err := r.c.InsertOne(ctx, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID, sectionID string,
) ([]Note, error) {
	filter := bson.M{"user_id": userID}
	if sectionID != "" {
		filter["section_id"] = sectionID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var result []Note
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return result, nil
}

// UpdateContent mutates a note only when id and owner both match, so
// callers cannot tell a foreign note from an absent one.
func (r *repository) UpdateContent(
	ctx context.Context,
	id, userID, content string,
) (*Note, error) {
	filter := bson.M{"_id": id, "user_id": userID}
	update := bson.M{"$set": bson.M{
		"content":    content,
		"updated_at": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var note Note
	err := r.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update note: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	return &note, nil
}

func (r *repository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("delete note: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountByUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}
