package booking

import (
	"context"
	"math"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
)

// PaymentGateway is the narrow surface of the card processor the core needs.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error)
}

type CreatePaymentIntentInput struct {
	Price float64
}

type CreatePaymentIntent struct {
	gateway  PaymentGateway
	currency string
}

func NewCreatePaymentIntent(gateway PaymentGateway, currency string) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		gateway:  gateway,
		currency: currency,
	}
}

// Execute requests a charge intent for the exact service price. Price is in
// major units; the gateway takes minor units, so a minor-unit currency is
// multiplied by 100.
func (uc *CreatePaymentIntent) Execute(
	ctx context.Context,
	in CreatePaymentIntentInput,
) (string, error) {

	if in.Price <= 0 {
		return "", httperr.ErrBusiness("invalid_price")
	}

	amount := int64(math.Round(in.Price * 100))

	return uc.gateway.CreatePaymentIntent(ctx, amount, uc.currency)
}
