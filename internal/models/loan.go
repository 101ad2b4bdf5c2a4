package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Loan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Category       string             `bson:"category" json:"category"`
	MinAmount      float64            `bson:"minAmount" json:"minAmount"`
	MaxAmount      float64            `bson:"maxAmount" json:"maxAmount"`
	InterestRate   float64            `bson:"interestRate" json:"interestRate"`
	TermMonths     int                `bson:"termMonths" json:"termMonths"`
	ApplicationFee float64            `bson:"applicationFee" json:"applicationFee"`
	ShowOnHome     bool               `bson:"showOnHome" json:"showOnHome"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
