package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/loanlift/loanlift-api/internal/models"
)

// Payments is the MongoDB-backed PaymentStore.
type Payments struct {
	c *mongo.Collection
}

func NewPayments(db *mongo.Database) *Payments {
	return &Payments{c: db.Collection("payments")}
}

func (s *Payments) Insert(ctx context.Context, p *models.Payment) (string, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	res, err := s.c.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindByApplicationID returns the payment recorded for an application,
// or nil when none exists.
func (s *Payments) FindByApplicationID(ctx context.Context, applicationID string) (*models.Payment, error) {
	var p models.Payment
	err := s.c.FindOne(ctx, bson.M{"applicationId": applicationID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
