// File: services/workshop/payments.go
package workshop

import (
	"context"
	"fmt"

	"placehub/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeProvider implements PaymentProvider on the Stripe API.
type StripeProvider struct{}

// NewStripeProvider sets the API key from configuration and returns a provider.
func NewStripeProvider() *StripeProvider {
	stripe.Key = config.AppConfig.StripeKey
	return &StripeProvider{}
}

// CreatePaymentIntent opens a payment intent and returns its client secret.
// The amount is in the currency's smallest unit (cents for usd).
func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, amount int64, currency, description string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
