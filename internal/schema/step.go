package schema

import (
	"encoding/json"
	"net/http"
)

type StepName string

const (
	Auth        StepName = "Auth"
	Shop        StepName = "Shop"
	Price       StepName = "Price"
	CreateOrder StepName = "CreateOrder"
)

type Key string

const (
	RequestingStepKey Key = "requestingStep"
)

// StepResponse is the raw response of one workflow step, left for the caller to assert on.
type StepResponse struct {
	Status int
	Header http.Header
	Body   []byte
}

func (r *StepResponse) OK() bool {
	return r.Status >= 200 && r.Status <= 299
}

func (r *StepResponse) Text() string {
	return string(r.Body)
}

func (r *StepResponse) JSON(destination any) error {
	return json.Unmarshal(r.Body, destination)
}
