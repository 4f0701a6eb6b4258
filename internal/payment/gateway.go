// AngelaMos | 2026
// gateway.go

package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/angelamos/parceld/internal/config"
)

// Gateway abstracts the external payment processor. It issues an intent
// the client completes out of band; this service never touches card data.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	currency := cfg.Currency
	if currency == "" {
		currency = "usd"
	}

	return &StripeGateway{
		api:      api,
		currency: currency,
	}
}

func (g *StripeGateway) CreateIntent(
	ctx context.Context,
	amountCents int64,
) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

var _ Gateway = (*StripeGateway)(nil)
