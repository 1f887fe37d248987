package jsonapi

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type shopRequest struct {
	params     schema.ShopParams
	logger     *zerolog.Logger
	slowLogger slowlog.Logger
}

func (r *shopRequest) Execute(ctx context.Context, httpTransport http.RoundTripper) (*schema.StepResponse, error) {
	r.slowLogger.Start("json:shop")
	defer r.slowLogger.Stop("json:shop")

	payload := json.NewShopRQ(r.params.Trip, r.params.Roster)

	r.logger.Info().
		Str("origin", r.params.Trip.Origin).
		Str("destination", r.params.Trip.Destination).
		Str("date", r.params.Trip.Date.String()).
		Interface("roster", r.params.Roster.Map()).
		Msg("Shopping offers")

	return post(ctx, httpTransport, r.params.Endpoint, schema.Shop, "Shop", payload, r.logger)
}
