package web_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/reservations-e2e/internal/tools/logger"
	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	router.GET("/fail", func(c *gin.Context) {
		web.HandleError(c, http.StatusBadRequest, "Bad things", errors.New("reason"))
	})
}

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	router := web.SetupRouter(logger.NewWithWriter(out, "debug"), panicRoutes{})

	t.Run("should answer status and echo correlation ids", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set(web.CorrelationIDHeader, "E2E-AUTO-1")

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "uptime")
		assert.Equal(t, "E2E-AUTO-1", rec.Header().Get(web.CorrelationIDHeader))
		assert.NotEmpty(t, rec.Header().Get(web.RequestIDHeader))
		assert.Contains(t, out.String(), `"label":"trace"`)
		assert.Contains(t, out.String(), `"correlationId":"E2E-AUTO-1"`)
	})

	t.Run("should reply errors as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"errors":[{"code":400,"message":"Bad things","detail":"reason"}]}`, rec.Body.String())
	})

	t.Run("should recover from panics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "boom")
	})
}
