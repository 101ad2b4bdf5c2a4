package store

import (
	"context"
	"errors"
	"time"

	"github.com/loanlift/loanlift-api/internal/models"
)

// ErrInvalidID is returned when a route id is not a valid object id.
var ErrInvalidID = errors.New("invalid document id")

// UpdateResult reports what a mutation matched and changed.
type UpdateResult struct {
	Matched    int64  `json:"matchedCount"`
	Modified   int64  `json:"modifiedCount"`
	UpsertedID string `json:"upsertedId,omitempty"`
}

// UserStore is the users collection accessor.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindRole(ctx context.Context, email string) (models.Role, models.UserStatus, error)
	List(ctx context.Context, f UserFilter) ([]models.User, error)
	Insert(ctx context.Context, u *models.User) (string, error)
	UpdateModeration(ctx context.Context, id string, patch UserModeration) (UpdateResult, error)
}

// LoanStore is the loans collection accessor.
type LoanStore interface {
	List(ctx context.Context, f LoanFilter) ([]models.Loan, error)
	FindByID(ctx context.Context, id string) (*models.Loan, error)
	Insert(ctx context.Context, l *models.Loan) (string, error)
	Upsert(ctx context.Context, id string, patch LoanPatch) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ApplicationStore is the applications collection accessor.
type ApplicationStore interface {
	List(ctx context.Context, f ApplicationFilter) ([]models.Application, error)
	Insert(ctx context.Context, a *models.Application) (string, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, approvedAt *time.Time) (UpdateResult, error)
	UpdateStage(ctx context.Context, id string, stage models.ApplicationStage) (UpdateResult, error)
	MarkFeePaid(ctx context.Context, id string) (UpdateResult, error)
	DeletePending(ctx context.Context, id string) (int64, error)
}

// PaymentStore is the payments collection accessor.
type PaymentStore interface {
	Insert(ctx context.Context, p *models.Payment) (string, error)
	FindByApplicationID(ctx context.Context, applicationID string) (*models.Payment, error)
}
