package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the review outcome of a loan application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// ApplicationStage is the processing step an application sits in.
type ApplicationStage string

const (
	StageApplied      ApplicationStage = "applied"
	StageReview       ApplicationStage = "review"
	StageDisbursement ApplicationStage = "disbursement"
)

func (s ApplicationStage) Valid() bool {
	switch s {
	case StageApplied, StageReview, StageDisbursement:
		return true
	}
	return false
}

// FeeStatus tracks whether the application fee has been paid.
type FeeStatus string

const (
	FeeUnpaid FeeStatus = "unpaid"
	FeePaid   FeeStatus = "paid"
)

type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BorrowerEmail string             `bson:"borrowerEmail" json:"borrowerEmail"`
	LoanID        string             `bson:"loanId" json:"loanId"`
	LoanTitle     string             `bson:"loanTitle,omitempty" json:"loanTitle,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        ApplicationStatus  `bson:"status" json:"status"`
	Stage         ApplicationStage   `bson:"stage" json:"stage"`
	FeeStatus     FeeStatus          `bson:"feeStatus" json:"feeStatus"`
	AppliedAt     time.Time          `bson:"appliedAt" json:"appliedAt"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	ApprovedAt    *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}
