package requesting

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

func RequestErrors(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, schema.NewTimeoutError(err)
		}

		return nil, schema.NewConnectionError(err)
	}

	return response, nil
}

// Post sends body to url and returns the response whatever its status code is.
func Post(
	ctx context.Context,
	client *http.Client,
	step schema.StepName,
	url string,
	headers map[string]string,
	contentType string,
	body []byte,
) (*schema.StepResponse, error) {
	c := context.WithValue(ctx, schema.RequestingStepKey, step)

	httpRequest, err := http.NewRequestWithContext(c, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		httpRequest.Header.Set(key, value)
	}
	httpRequest.Header.Set("Content-Type", contentType)

	rs, err := RequestErrors(client.Do(httpRequest))
	if err != nil {
		return nil, err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return nil, schema.NewConnectionError(err)
	}

	return &schema.StepResponse{
		Status: rs.StatusCode,
		Header: rs.Header,
		Body:   bodyBytes,
	}, nil
}
