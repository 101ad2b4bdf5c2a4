package handlers

import (
	"context"

	"github.com/loanlift/loanlift-api/internal/auth"
	"github.com/loanlift/loanlift-api/internal/store"
)

// PaymentGateway opens payment intents with the external processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

// Handler carries the stores and services the route handlers use.
type Handler struct {
	Users        store.UserStore
	Loans        store.LoanStore
	Applications store.ApplicationStore
	Payments     store.PaymentStore
	Tokens       *auth.TokenService
	Gateway      PaymentGateway

	// SecureCookies switches the session cookie to SameSite=None; Secure
	// for cross-site production deployments.
	SecureCookies bool
}

func NewHandler(users store.UserStore, loans store.LoanStore, applications store.ApplicationStore, payments store.PaymentStore, tokens *auth.TokenService, gateway PaymentGateway, secureCookies bool) *Handler {
	return &Handler{
		Users:         users,
		Loans:         loans,
		Applications:  applications,
		Payments:      payments,
		Tokens:        tokens,
		Gateway:       gateway,
		SecureCookies: secureCookies,
	}
}
