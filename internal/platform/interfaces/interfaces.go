package interfaces

import (
	"context"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/rs/zerolog"
)

type WithShop interface {
	Shop(context.Context, schema.ShopParams, *zerolog.Logger) (*schema.StepResponse, error)
}

type WithPrice interface {
	Price(context.Context, schema.PriceParams, *zerolog.Logger) (*schema.StepResponse, error)
}

type WithCreateOrder interface {
	CreateOrder(context.Context, schema.CreateOrderParams, *zerolog.Logger) (*schema.StepResponse, error)
}

// WithCorrelation reads the values a step needs out of the previous response.
type WithCorrelation interface {
	OfferSelection(schema.Roster, []byte) (schema.OfferSelection, error)
	PassengerDetails(schema.Roster, []byte) (schema.PassengerDetails, error)
	OfferID([]byte) (string, error)
	OrderResult([]byte) (schema.OrderResult, error)
}
