package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	CorrelationIDHeader = "x-correlation-id"
	RequestIDHeader     = "x-request-id"

	LoggerKey           = "logger"
	CorrelationIDKey    = "correlationId"
	RequestIDKey        = "requestId"
	RequestStartTimeKey = "requestStartTime"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func StartRequest(c *gin.Context) {
	c.Set(RequestStartTimeKey, CurrentTimeFunc())
}

// CorrelationID takes the correlation and request ids from the request headers,
// generating missing ones, and echoes them on the response.
func CorrelationID(c *gin.Context) {
	correlationID := c.GetHeader(CorrelationIDHeader)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	c.Set(CorrelationIDKey, correlationID)
	c.Set(RequestIDKey, requestID)

	c.Header(CorrelationIDHeader, correlationID)
	c.Header(RequestIDHeader, requestID)
}

func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestLogger := logger.
			With().
			Str(CorrelationIDKey, c.GetString(CorrelationIDKey)).
			Str(RequestIDKey, c.GetString(RequestIDKey)).
			Logger()

		c.Set(LoggerKey, &requestLogger)
	}
}

func Logger(c *gin.Context) *zerolog.Logger {
	return c.MustGet(LoggerKey).(*zerolog.Logger)
}

func TraceLog(c *gin.Context) {
	// Finish all others and then write trace log
	c.Next()

	startTime := c.MustGet(RequestStartTimeKey).(time.Time)

	Logger(c).Info().
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Int("code", c.Writer.Status()).
		Float64("duration", time.Since(startTime).Seconds()).
		Msg("")
}

func PanicRecovery(c *gin.Context) {
	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: Logger(c),
	}, func(c *gin.Context, err any) {
		message, ok := err.(string)
		if !ok {
			message = "Unknown error, panic recovered"
		}
		HandleError(c, http.StatusInternalServerError, message, nil)
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.logger.Error().Msg(string(p))

	return len(p), nil
}
