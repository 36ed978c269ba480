// AngelaMos | 2026
// repository.go

package favorites

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litoralverde/training-api/internal/core"
)

type Repository interface {
	EnsureIndexes(ctx context.Context) error
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Get(ctx context.Context, userID, sectionID string) (*Favorite, error)
	Create(ctx context.Context, fav *Favorite) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{c: db.Collection("favorites")}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	// The unique index is a backstop: toggle already checks existence,
	// but two racing toggles must not leave duplicate records.
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "section_id", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetName("idx_favorites_user_section"),
	})
	if err != nil {
		return fmt.Errorf("create favorite indexes: %w", err)
	}
	return nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Favorite, error) {
	cursor, err := r.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	var result []Favorite
	if err := cursor.All(ctx, &result); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return result, nil
}

func (r *repository) Get(
	ctx context.Context,
	userID, sectionID string,
) (*Favorite, error) {
	var fav Favorite
	err := r.c.FindOne(ctx, bson.M{
		"user_id":    userID,
		"section_id": sectionID,
	}).Decode(&fav)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get favorite: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get favorite: %w", err)
	}

	return &fav, nil
}

func (r *repository) Create(ctx context.Context, fav *Favorite) error {
	if _, err := r.c.InsertOne(ctx, fav); err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create favorite: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("delete favorite: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountByUser(
	ctx context.Context,
	userID string,
) (int64, error) {
	count, err := r.c.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}
	return count, nil
}
