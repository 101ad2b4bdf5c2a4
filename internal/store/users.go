package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loanlift/loanlift-api/internal/models"
)

// Users is the MongoDB-backed UserStore.
type Users struct {
	c *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{c: db.Collection("users")}
}

// FindByEmail returns the user document for email, or nil when absent.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindRole returns the stored role and status for email. A missing user
// yields zero values without an error.
func (s *Users) FindRole(ctx context.Context, email string) (models.Role, models.UserStatus, error) {
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return "", "", err
	}
	if u == nil {
		return "", "", nil
	}
	return u.Role, u.Status, nil
}

func (s *Users) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.c.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) Insert(ctx context.Context, u *models.User) (string, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	res, err := s.c.InsertOne(ctx, u)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateModeration updates the admin-editable fields of a user by id.
// No upsert: an unmatched id yields a zero-count result.
func (s *Users) UpdateModeration(ctx context.Context, id string, patch UserModeration) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch.set()})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
