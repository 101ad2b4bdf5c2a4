package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/loanlift/loanlift-api/internal/models"
)

// Applications is the MongoDB-backed ApplicationStore.
type Applications struct {
	c *mongo.Collection
}

func NewApplications(db *mongo.Database) *Applications {
	return &Applications{c: db.Collection("applications")}
}

func (s *Applications) List(ctx context.Context, f ApplicationFilter) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cursor, err := s.c.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Applications) Insert(ctx context.Context, a *models.Application) (string, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	res, err := s.c.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateStatus sets the application status and refreshes updatedAt.
// When approvedAt is non-nil it is stamped alongside.
func (s *Applications) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, approvedAt *time.Time) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	set := bson.M{"status": status, "updatedAt": time.Now()}
	if approvedAt != nil {
		set["approvedAt"] = *approvedAt
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (s *Applications) UpdateStage(ctx context.Context, id string, stage models.ApplicationStage) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	set := bson.M{"stage": stage, "updatedAt": time.Now()}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (s *Applications) MarkFeePaid(ctx context.Context, id string) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	set := bson.M{"feeStatus": models.FeePaid, "updatedAt": time.Now()}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// DeletePending removes the application only while it is still pending.
// The compound filter makes a non-pending delete a silent no-op.
func (s *Applications) DeletePending(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid, "status": models.ApplicationPending})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
