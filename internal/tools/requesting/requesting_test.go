package requesting_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/requesting"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	var handlerFunc http.HandlerFunc
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerFunc(w, r)
	}))
	defer testServer.Close()

	t.Run("should record the exchange and keep the body readable", func(t *testing.T) {
		handlerFunc = func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"shop":true}`, string(body))
			assert.Equal(t, "token", r.Header.Get("x-sabre-auth-token"))
			assert.Equal(t, schema.ContentTypeJSON, r.Header.Get("Content-Type"))

			w.Header().Set("Content-Type", schema.ContentTypeJSON)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"offers":[]}`))
		}

		bucket := schema.NewAttachmentsBucket()
		client := requesting.NewClient(http.DefaultTransport, time.Second, &log, bucket)

		response, err := requesting.Post(
			context.Background(),
			client,
			schema.Shop,
			testServer.URL+"/shop",
			map[string]string{"x-sabre-auth-token": "token"},
			schema.ContentTypeJSON,
			[]byte(`{"shop":true}`),
		)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, response.Status)
		assert.Equal(t, `{"offers":[]}`, response.Text())

		exchanges := bucket.Exchanges()
		require.Len(t, exchanges, 1)
		assert.Equal(t, schema.Shop, exchanges[0].Step)
		assert.Equal(t, http.MethodPost, exchanges[0].RequestContent.Method)
		assert.Equal(t, testServer.URL+"/shop", exchanges[0].RequestContent.Url)
		assert.Equal(t, `{"shop":true}`, exchanges[0].RequestContent.Body)
		assert.Equal(t, http.StatusCreated, exchanges[0].ResponseContent.StatusCode)
		assert.Equal(t, `{"offers":[]}`, exchanges[0].ResponseContent.Body)
		assert.NotNil(t, exchanges[0].Duration)

		assert.Contains(t, out.String(), `"label":"outgoing-request"`)
		assert.Contains(t, out.String(), `"step":"Shop"`)
	})

	t.Run("should classify timeouts", func(t *testing.T) {
		slowServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer slowServer.Close()

		bucket := schema.NewAttachmentsBucket()
		client := requesting.NewClient(http.DefaultTransport, 5*time.Millisecond, &log, bucket)

		_, err := requesting.Post(context.Background(), client, schema.Price, slowServer.URL, nil, schema.ContentTypeXML, []byte("<x/>"))

		var stepError schema.StepError
		require.True(t, errors.As(err, &stepError))
		assert.Equal(t, schema.TimeoutError, stepError.Code)
	})

	t.Run("should keep the transport error as the cause", func(t *testing.T) {
		slowServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer slowServer.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		defer cancel()

		client := requesting.NewClient(http.DefaultTransport, time.Second, &log, nil)

		_, err := requesting.Post(ctx, client, schema.Shop, slowServer.URL, nil, schema.ContentTypeJSON, []byte(`{}`))

		var stepError schema.StepError
		require.True(t, errors.As(err, &stepError))
		assert.Equal(t, schema.TimeoutError, stepError.Code)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("should record an exchange without response when the connection fails", func(t *testing.T) {
		closedServer := httptest.NewServer(http.NotFoundHandler())
		closedServer.Close()

		bucket := schema.NewAttachmentsBucket()
		client := requesting.NewClient(http.DefaultTransport, time.Second, &log, bucket)

		_, err := requesting.Post(context.Background(), client, schema.CreateOrder, closedServer.URL, nil, schema.ContentTypeJSON, []byte(`{}`))

		var stepError schema.StepError
		require.True(t, errors.As(err, &stepError))
		assert.Equal(t, schema.ConnectionError, stepError.Code)

		exchanges := bucket.Exchanges()
		require.Len(t, exchanges, 1)
		assert.Equal(t, schema.CreateOrder, exchanges[0].Step)
		assert.Equal(t, 0, exchanges[0].ResponseContent.StatusCode)
		assert.Equal(t, `{}`, exchanges[0].RequestContent.Body)
	})
}
