package ndcxml

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/ndcxml/ndc"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type createOrderRequest struct {
	params     schema.CreateOrderParams
	persons    passenger.PersonGenerator
	logger     *zerolog.Logger
	slowLogger slowlog.Logger
}

func (r *createOrderRequest) Execute(ctx context.Context, httpTransport http.RoundTripper) (*schema.StepResponse, error) {
	r.slowLogger.Start("xml:create-order")
	defer r.slowLogger.Stop("xml:create-order")

	payload, err := ndc.OrderCreateRQ(r.params.Configuration, r.params.Roster, r.params.Details, r.params.OfferID, r.persons)
	if err != nil {
		r.params.Bucket.AttachError("CreateOrder", err)
		return nil, err
	}

	r.logger.Info().
		Str("offerId", r.params.OfferID).
		Interface("passengerDetails", r.params.Details.Map()).
		Msg("Creating NDC order")

	return post(ctx, httpTransport, r.params.Endpoint, schema.CreateOrder, "CreateOrder", payload, r.logger)
}
