package services

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrNotConfigured is returned when no processor secret key was supplied.
var ErrNotConfigured = errors.New("payment processor is not configured")

// Gateway wraps the Stripe payment-intent API.
type Gateway struct {
	api *client.API
}

// NewGateway builds a gateway from the processor secret key. An empty
// key yields a gateway whose calls fail with ErrNotConfigured.
func NewGateway(secretKey string) *Gateway {
	g := &Gateway{}
	if secretKey != "" {
		g.api = &client.API{}
		g.api.Init(secretKey, nil)
	}
	return g
}

// CreateIntent opens a payment intent for a decimal currency amount and
// returns the client secret that authorizes client-side completion.
func (g *Gateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	if g.api == nil {
		return "", ErrNotConfigured
	}
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(amount)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

// MinorUnits converts a decimal currency amount to integer minor units,
// truncating toward zero.
func MinorUnits(amount float64) int64 {
	return int64(amount * 100)
}
