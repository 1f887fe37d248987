package requesting

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/rs/zerolog"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	resp, err := transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type LoggingTransportMiddleware struct {
	Transport http.RoundTripper
	log       *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &LoggingTransportMiddleware{
			log:       log,
			Transport: rt,
		}
	}
}

func (t *LoggingTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("userAgent", req.UserAgent())

	if step, ok := req.Context().Value(schema.RequestingStepKey).(schema.StepName); ok {
		message.Str("step", string(step))
	}

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

// RequestBucket receives every round trip sent through a step client.
type RequestBucket interface {
	Record(schema.Exchange)
}

// BucketTransportMiddleware buffers both bodies so the exchange can be
// recorded while the caller still reads the response.
type BucketTransportMiddleware struct {
	Transport http.RoundTripper
	Bucket    RequestBucket
}

func NewBucketTransportMiddleware(bucket RequestBucket) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &BucketTransportMiddleware{
			Transport: rt,
			Bucket:    bucket,
		}
	}
}

func (b *BucketTransportMiddleware) RoundTrip(request *http.Request) (*http.Response, error) {
	startTime := time.Now()
	step, _ := request.Context().Value(schema.RequestingStepKey).(schema.StepName)

	requestBody, err := drain(&request.Body)
	if err != nil {
		return nil, err
	}

	response, err := b.Transport.RoundTrip(request)
	if err != nil {
		b.Bucket.Record(schema.NewExchange(step, startTime, request, requestBody, nil, ""))
		return nil, err
	}

	responseBody, err := drain(&response.Body)
	b.Bucket.Record(schema.NewExchange(step, startTime, request, requestBody, response, responseBody))
	if err != nil {
		return nil, err
	}

	return response, nil
}

// drain reads body fully and puts a replayable copy back in its place.
func drain(body *io.ReadCloser) (string, error) {
	if *body == nil || *body == http.NoBody {
		return "", nil
	}

	content, err := io.ReadAll(*body)
	(*body).Close()
	*body = io.NopCloser(bytes.NewReader(content))

	return string(content), err
}

// NewClient builds the client every workflow step sends its request with.
func NewClient(transport http.RoundTripper, timeout time.Duration, log *zerolog.Logger, bucket RequestBucket) *http.Client {
	middlewares := []TransportMiddleware{
		NewLoggingTransportMiddleware(log),
	}

	if bucket != nil {
		middlewares = append(middlewares, NewBucketTransportMiddleware(bucket))
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &InterceptorTransport{
			Transport:   transport,
			Middlewares: middlewares,
		},
	}
}
