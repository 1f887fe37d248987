package ndcxml

import (
	"context"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/requesting"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"bitbucket.org/crgw/reservations-e2e/internal/xmltemplate"
	"github.com/rs/zerolog"
)

type ndcAPI struct {
	httpTransport http.RoundTripper
	persons       passenger.PersonGenerator
	offerIDPolicy schema.OfferIDPolicy
}

func (a *ndcAPI) Shop(ctx context.Context, params schema.ShopParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	shopRequest := shopRequest{
		params:     params,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return shopRequest.Execute(ctx, a.httpTransport)
}

func (a *ndcAPI) Price(ctx context.Context, params schema.PriceParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	priceRequest := priceRequest{
		params:     params,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return priceRequest.Execute(ctx, a.httpTransport)
}

func (a *ndcAPI) CreateOrder(ctx context.Context, params schema.CreateOrderParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	createOrderRequest := createOrderRequest{
		params:     params,
		persons:    a.persons,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return createOrderRequest.Execute(ctx, a.httpTransport)
}

func New(persons passenger.PersonGenerator) *ndcAPI {
	return NewWithTransport(persons, http.DefaultTransport)
}

func NewWithTransport(persons passenger.PersonGenerator, transport http.RoundTripper) *ndcAPI {
	if persons == nil {
		persons = passenger.NewFakePersons(0)
	}

	return &ndcAPI{
		httpTransport: transport,
		persons:       persons,
		offerIDPolicy: schema.FirstOfferWins,
	}
}

func post(
	ctx context.Context,
	httpTransport http.RoundTripper,
	endpoint schema.Endpoint,
	step schema.StepName,
	label string,
	payload string,
	logger *zerolog.Logger,
) (*schema.StepResponse, error) {
	endpoint.Bucket.Attach(label+" XML Request Payload", schema.ContentTypeXML, xmltemplate.FormatIndented(payload))

	client := requesting.NewClient(httpTransport, endpoint.Timeout, logger, endpoint.Bucket)

	response, err := requesting.Post(ctx, client, step, endpoint.URL, endpoint.Headers, schema.ContentTypeXML, []byte(payload))
	if err != nil {
		endpoint.Bucket.AttachError(label, err)
		return nil, err
	}

	endpoint.Bucket.Attach(label+" XML Response Body", schema.ContentTypeXML, xmltemplate.FormatIndented(string(response.Body)))

	return response, nil
}
