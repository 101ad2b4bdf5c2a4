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

// Loans is the MongoDB-backed LoanStore.
type Loans struct {
	c *mongo.Collection
}

func NewLoans(db *mongo.Database) *Loans {
	return &Loans{c: db.Collection("loans")}
}

func (s *Loans) List(ctx context.Context, f LoanFilter) ([]models.Loan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.c.Find(ctx, f.bson(), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var loans []models.Loan
	if err := cursor.All(ctx, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// FindByID returns the loan document for id, or nil when absent.
func (s *Loans) FindByID(ctx context.Context, id string) (*models.Loan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var l models.Loan
	err = s.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Loans) Insert(ctx context.Context, l *models.Loan) (string, error) {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	res, err := s.c.InsertOne(ctx, l)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Upsert applies the patch to the loan with id, creating the document
// when absent.
func (s *Loans) Upsert(ctx context.Context, id string, patch LoanPatch) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, ErrInvalidID
	}
	opts := options.Update().SetUpsert(true)
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch.set()}, opts)
	if err != nil {
		return UpdateResult{}, err
	}
	out := UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = upserted.Hex()
	}
	return out, nil
}

func (s *Loans) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
