package jsonapi

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type priceRequest struct {
	params     schema.PriceParams
	logger     *zerolog.Logger
	slowLogger slowlog.Logger
}

func (r *priceRequest) Execute(ctx context.Context, httpTransport http.RoundTripper) (*schema.StepResponse, error) {
	r.slowLogger.Start("json:price")
	defer r.slowLogger.Stop("json:price")

	payload := json.NewPriceRQ(r.params.Selection, r.params.Configuration)

	r.logger.Info().
		Interface("offerSelection", r.params.Selection.Map()).
		Msg("Pricing offer")

	return post(ctx, httpTransport, r.params.Endpoint, schema.Price, "Price", payload, r.logger)
}
