package schema

type StepErrorCode string

const (
	TimeoutError    StepErrorCode = "TIMEOUT_ERROR"
	ConnectionError StepErrorCode = "CONNECTION_ERROR"
)

// StepError classifies a transport failure. The transport error stays
// reachable through errors.Is and errors.As.
type StepError struct {
	Code    StepErrorCode `json:"code"`
	Message string        `json:"message"`
	cause   error
}

func (e StepError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e StepError) Unwrap() error {
	return e.cause
}

func NewTimeoutError(cause error) StepError {
	return StepError{
		Code:    TimeoutError,
		Message: cause.Error(),
		cause:   cause,
	}
}

func NewConnectionError(cause error) StepError {
	return StepError{
		Code:    ConnectionError,
		Message: cause.Error(),
		cause:   cause,
	}
}
