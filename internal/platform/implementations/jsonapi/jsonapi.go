package jsonapi

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/requesting"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type jsonAPI struct {
	httpTransport http.RoundTripper
	persons       passenger.PersonGenerator
	offerIDPolicy schema.OfferIDPolicy
}

func (a *jsonAPI) Shop(ctx context.Context, params schema.ShopParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	shopRequest := shopRequest{
		params:     params,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return shopRequest.Execute(ctx, a.httpTransport)
}

func (a *jsonAPI) Price(ctx context.Context, params schema.PriceParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	priceRequest := priceRequest{
		params:     params,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return priceRequest.Execute(ctx, a.httpTransport)
}

func (a *jsonAPI) CreateOrder(ctx context.Context, params schema.CreateOrderParams, logger *zerolog.Logger) (*schema.StepResponse, error) {
	createOrderRequest := createOrderRequest{
		params:     params,
		persons:    a.persons,
		logger:     logger,
		slowLogger: slowlog.CreateLogger(logger),
	}

	return createOrderRequest.Execute(ctx, a.httpTransport)
}

func New(persons passenger.PersonGenerator) *jsonAPI {
	return NewWithTransport(persons, http.DefaultTransport)
}

func NewWithTransport(persons passenger.PersonGenerator, transport http.RoundTripper) *jsonAPI {
	if persons == nil {
		persons = passenger.NewFakePersons(0)
	}

	return &jsonAPI{
		httpTransport: transport,
		persons:       persons,
		offerIDPolicy: schema.LastOfferWins,
	}
}

// post sends payload as JSON and records the request, the response and any
// failure in the bucket of the endpoint under label.
func post(
	ctx context.Context,
	httpTransport http.RoundTripper,
	endpoint schema.Endpoint,
	step schema.StepName,
	label string,
	payload any,
	logger *zerolog.Logger,
) (*schema.StepResponse, error) {
	body, err := jsonEncoding.Marshal(payload)
	if err != nil {
		endpoint.Bucket.AttachError(label, err)
		return nil, err
	}

	endpoint.Bucket.Attach(label+" Request Payload", schema.ContentTypeJSON, indented(body))

	client := requesting.NewClient(httpTransport, endpoint.Timeout, logger, endpoint.Bucket)

	response, err := requesting.Post(ctx, client, step, endpoint.URL, endpoint.Headers, schema.ContentTypeJSON, body)
	if err != nil {
		endpoint.Bucket.AttachError(label, err)
		return nil, err
	}

	endpoint.Bucket.Attach(label+" Response Body", schema.ContentTypeJSON, indented(response.Body))

	return response, nil
}

func indented(body []byte) string {
	var out bytes.Buffer

	err := jsonEncoding.Indent(&out, body, "", "  ")
	if err != nil {
		return string(body)
	}

	return out.String()
}
