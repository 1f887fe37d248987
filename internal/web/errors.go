package web

import (
	"github.com/gin-gonic/gin"
)

type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type ErrorResponse struct {
	Errors []ErrorDetail `json:"errors"`
}

// HandleError logs err and aborts the request with a JSON error body.
func HandleError(c *gin.Context, status int, message string, err error) {
	detail := ErrorDetail{
		Code:    status,
		Message: message,
	}

	event := Logger(c).Warn().Int("code", status)
	if err != nil {
		detail.Detail = err.Error()
		event = event.Err(err)
	}
	event.Msg(message)

	c.AbortWithStatusJSON(status, ErrorResponse{Errors: []ErrorDetail{detail}})
}
