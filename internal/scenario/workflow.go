package scenario

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/config"
	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

const scenarioTimer = "Scenario"

type headerProvider interface {
	Headers(context.Context) (map[string]string, error)
}

type platformFactory interface {
	GetPlatform(string) (any, error)
}

type endpointsProvider interface {
	Endpoints(platform string) (config.Endpoints, error)
}

// Result is what a scenario produced up to the step it stopped after.
type Result struct {
	Roster    schema.Roster
	Selection schema.OfferSelection
	Details   schema.PassengerDetails
	OfferID   string
	Total     string
	Order     *schema.OrderResult
	Steps     []schema.StepName

	// Timings holds the duration of every step sent and of the whole scenario.
	Timings map[string]time.Duration
}

type Workflow struct {
	platforms     platformFactory
	endpoints     endpointsProvider
	headers       headerProvider
	configuration schema.Configuration
	timeout       time.Duration
}

func NewWorkflow(
	platforms platformFactory,
	endpoints endpointsProvider,
	headers headerProvider,
	configuration schema.Configuration,
	timeout time.Duration,
) *Workflow {
	return &Workflow{
		platforms:     platforms,
		endpoints:     endpoints,
		headers:       headers,
		configuration: configuration,
		timeout:       timeout,
	}
}

// Run drives shop, price and create order in sequence. Every step has to
// answer with a 2xx status before the next one is correlated and sent.
func (w *Workflow) Run(ctx context.Context, s Scenario, bucket *schema.AttachmentsBucket, logger *zerolog.Logger) (result Result, err error) {
	slowLogger := slowlog.CreateLogger(logger)
	slowLogger.Start(scenarioTimer)
	defer func() {
		slowLogger.Stop(scenarioTimer)
		result.Timings = slowLogger.Durations()
	}()

	trip, err := s.Trip()
	if err != nil {
		return result, err
	}

	roster, err := passenger.ParsePaxType(s.PaxType)
	if err != nil {
		return result, err
	}
	result.Roster = roster

	logger.Info().Interface("roster", roster.Map()).Msg("Pax type roster")

	api, err := platform.Get(w.platforms, s.Platform)
	if err != nil {
		return result, err
	}

	endpoints, err := w.endpoints.Endpoints(s.Platform)
	if err != nil {
		return result, err
	}

	endpoint, err := w.endpoint(ctx, endpoints.Shop, bucket)
	if err != nil {
		return result, err
	}

	slowLogger.Start(string(schema.Shop))
	shopResponse, err := api.Shop(ctx, schema.ShopParams{
		Endpoint:      endpoint,
		Configuration: w.configuration,
		Trip:          trip,
		Roster:        roster,
	}, logger)
	slowLogger.Stop(string(schema.Shop))
	if err = expectOK(schema.Shop, shopResponse, err); err != nil {
		return result, err
	}
	result.Steps = append(result.Steps, schema.Shop)

	result.Selection, err = api.OfferSelection(roster, shopResponse.Body)
	if err != nil {
		return result, correlationFailed(bucket, schema.Shop, err)
	}

	logger.Info().Interface("offerSelection", result.Selection.Map()).Msg("Offer items selected")

	if s.StopAfter == schema.Shop {
		return result, nil
	}

	endpoint, err = w.endpoint(ctx, endpoints.Price, bucket)
	if err != nil {
		return result, err
	}

	slowLogger.Start(string(schema.Price))
	priceResponse, err := api.Price(ctx, schema.PriceParams{
		Endpoint:      endpoint,
		Configuration: w.configuration,
		Selection:     result.Selection,
	}, logger)
	slowLogger.Stop(string(schema.Price))
	if err = expectOK(schema.Price, priceResponse, err); err != nil {
		return result, err
	}
	result.Steps = append(result.Steps, schema.Price)

	result.Details, err = api.PassengerDetails(roster, priceResponse.Body)
	if err != nil {
		return result, correlationFailed(bucket, schema.Price, err)
	}

	result.OfferID, err = api.OfferID(priceResponse.Body)
	if err != nil {
		return result, correlationFailed(bucket, schema.Price, err)
	}

	result.Total, err = passenger.FormattedTotal(result.Details)
	if err != nil {
		return result, correlationFailed(bucket, schema.Price, err)
	}

	logger.Info().
		Interface("passengerDetails", result.Details.Map()).
		Str("offerId", result.OfferID).
		Str("total", result.Total).
		Msg("Offer priced")

	if s.StopAfter == schema.Price {
		return result, nil
	}

	endpoint, err = w.endpoint(ctx, endpoints.CreateOrder, bucket)
	if err != nil {
		return result, err
	}

	slowLogger.Start(string(schema.CreateOrder))
	orderResponse, err := api.CreateOrder(ctx, schema.CreateOrderParams{
		Endpoint:      endpoint,
		Configuration: w.configuration,
		Roster:        roster,
		Details:       result.Details,
		OfferID:       result.OfferID,
	}, logger)
	slowLogger.Stop(string(schema.CreateOrder))
	if err = expectOK(schema.CreateOrder, orderResponse, err); err != nil {
		return result, err
	}
	result.Steps = append(result.Steps, schema.CreateOrder)

	order, err := api.OrderResult(orderResponse.Body)
	if err != nil {
		return result, correlationFailed(bucket, schema.CreateOrder, err)
	}
	result.Order = &order

	if !order.HasOrderID() {
		return result, ErrorOrderNotCreated
	}

	if s.ExpectNoWarning && order.WarningMessage != "" {
		return result, fmt.Errorf("%w: %s", ErrorUnexpectedWarning, order.WarningMessage)
	}

	logger.Info().
		Str("orderId", *order.OrderID).
		Str("warning", order.WarningMessage).
		Msg("Order created")

	return result, nil
}

// correlationFailed records a response that could not be correlated as the
// "<Step> API Error" diagnostic and returns err untouched.
func correlationFailed(bucket *schema.AttachmentsBucket, step schema.StepName, err error) error {
	bucket.AttachError(string(step), err)
	return err
}

func (w *Workflow) endpoint(ctx context.Context, url string, bucket *schema.AttachmentsBucket) (schema.Endpoint, error) {
	headers, err := w.headers.Headers(ctx)
	if err != nil {
		bucket.AttachError(string(schema.Auth), err)
		return schema.Endpoint{}, err
	}

	return schema.Endpoint{
		URL:     url,
		Headers: headers,
		Timeout: w.timeout,
		Bucket:  bucket,
	}, nil
}

func expectOK(step schema.StepName, response *schema.StepResponse, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", step, err)
	}

	if !response.OK() {
		return fmt.Errorf("%w: %s returned %d", ErrorUnexpectedStatus, step, response.Status)
	}

	return nil
}
