// AngelaMos | 2026
// repository.go

package user

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
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, user *User) error
	List(ctx context.Context) ([]User, error)
}

type repository struct {
	c *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{c: db.Collection("users")}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *repository) Create(ctx context.Context, user *User) error {
	if _, err := r.c.InsertOne(ctx, user); err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	var user User
	err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// Upsert replaces the record keyed by email, keeping the existing ID
// when present. Used by the seed utility so reprovisioning is safe.
func (r *repository) Upsert(ctx context.Context, user *User) error {
	var existing User
	err := r.c.FindOne(ctx, bson.M{"email": user.Email}).Decode(&existing)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return r.Create(ctx, user)
	case err != nil:
		return fmt.Errorf("upsert user: %w", err)
	}

	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt

	if _, err := r.c.ReplaceOne(ctx, bson.M{"_id": existing.ID}, user); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
