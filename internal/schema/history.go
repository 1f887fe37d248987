package schema

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/tools/converting"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Body        string `json:"body"`
}

type RequestContent struct {
	Url     string                 `json:"url"`
	Method  string                 `json:"method"`
	Body    string                 `json:"body"`
	Headers map[string]interface{} `json:"headers"`
}

type ResponseContent struct {
	StatusCode int                    `json:"statusCode"`
	Body       string                 `json:"body"`
	Headers    map[string]interface{} `json:"headers"`
}

// Exchange is one recorded HTTP round trip of a workflow step.
type Exchange struct {
	Step            StepName        `json:"step"`
	RequestContent  RequestContent  `json:"request"`
	ResponseContent ResponseContent `json:"response"`
	StartDateTime   *time.Time      `json:"startDateTime,omitempty"`
	Duration        *int            `json:"duration,omitempty"`
}

// AttachmentsBucket collects the diagnostic records of one scenario.
type AttachmentsBucket struct {
	attachments []Attachment
	exchanges   []Exchange
	sync.Mutex
}

func NewAttachmentsBucket() *AttachmentsBucket {
	return &AttachmentsBucket{
		attachments: []Attachment{},
		exchanges:   []Exchange{},
	}
}

func (b *AttachmentsBucket) Attach(name string, contentType string, body string) {
	if b == nil {
		return
	}

	b.Lock()
	b.attachments = append(b.attachments, Attachment{
		Name:        name,
		ContentType: contentType,
		Body:        body,
	})
	b.Unlock()
}

// AttachError records err as the "<label> API Error" diagnostic.
func (b *AttachmentsBucket) AttachError(label string, err error) {
	body, _ := json.Marshal(map[string]string{"message": err.Error()})
	b.Attach(label+" API Error", ContentTypeJSON, string(body))
}

func (b *AttachmentsBucket) Attachments() []Attachment {
	b.Lock()
	defer b.Unlock()

	return append([]Attachment{}, b.attachments...)
}

func (b *AttachmentsBucket) Exchanges() []Exchange {
	b.Lock()
	defer b.Unlock()

	return append([]Exchange{}, b.exchanges...)
}

// Record appends one round trip to the exchanges of the scenario.
func (b *AttachmentsBucket) Record(exchange Exchange) {
	if b == nil {
		return
	}

	b.Lock()
	b.exchanges = append(b.exchanges, exchange)
	b.Unlock()
}

// NewExchange captures a finished round trip. A zero status means no response
// was received.
func NewExchange(step StepName, startTime time.Time, request *http.Request, requestBody string, response *http.Response, responseBody string) Exchange {
	duration := int(time.Since(startTime).Milliseconds())

	exchange := Exchange{
		Step: step,
		RequestContent: RequestContent{
			Url:     request.URL.String(),
			Method:  request.Method,
			Body:    requestBody,
			Headers: converting.ConvertMap(request.Header),
		},
		ResponseContent: ResponseContent{
			Headers: map[string]interface{}{},
		},
		StartDateTime: &startTime,
		Duration:      &duration,
	}

	if response != nil {
		exchange.ResponseContent = ResponseContent{
			StatusCode: response.StatusCode,
			Body:       responseBody,
			Headers:    converting.ConvertMap(response.Header),
		}
	}

	return exchange
}
