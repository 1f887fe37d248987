package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/converting"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Reporter writes the attachments of every scenario to
// <dir>/<scenario>/NN-<attachment>.<ext>, followed by the recorded exchanges
// and a summary.
type Reporter struct {
	dir string
}

func NewReporter(dir string) *Reporter {
	return &Reporter{dir: dir}
}

type summary struct {
	Scenario string              `json:"scenario"`
	Platform string              `json:"platform"`
	Passed   bool                `json:"passed"`
	Error    string              `json:"error,omitempty"`
	Duration float64             `json:"duration"`
	Timings  map[string]float64  `json:"timings,omitempty"`
	Steps    []schema.StepName   `json:"steps"`
	OfferID  string              `json:"offerId,omitempty"`
	Total    string              `json:"total,omitempty"`
	OrderID  string              `json:"orderId,omitempty"`
	Order    *schema.OrderResult `json:"order,omitempty"`
}

func (r *Reporter) Write(outcome Outcome) error {
	dir := filepath.Join(r.dir, fileName(outcome.Scenario.Name))

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	attachments := outcome.Bucket.Attachments()
	for i, attachment := range attachments {
		name := fmt.Sprintf("%02d-%s.%s", i+1, fileName(attachment.Name), extension(attachment.ContentType))

		err = os.WriteFile(filepath.Join(dir, name), []byte(attachment.Body), 0o644)
		if err != nil {
			return err
		}
	}

	exchanges, err := json.MarshalIndent(outcome.Bucket.Exchanges(), "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(dir, fmt.Sprintf("%02d-exchanges.json", len(attachments)+1)), exchanges, 0o644)
	if err != nil {
		return err
	}

	s := summary{
		Scenario: outcome.Scenario.Name,
		Platform: outcome.Scenario.Platform,
		Passed:   outcome.Passed(),
		Duration: outcome.Duration.Seconds(),
		Steps:    outcome.Result.Steps,
		OfferID:  outcome.Result.OfferID,
		Total:    outcome.Result.Total,
		OrderID:  converting.Unwrap(converting.Unwrap(outcome.Result.Order).OrderID),
		Order:    outcome.Result.Order,
	}
	if len(outcome.Result.Timings) > 0 {
		s.Timings = make(map[string]float64, len(outcome.Result.Timings))
		for name, duration := range outcome.Result.Timings {
			s.Timings[name] = duration.Seconds()
		}
	}
	if outcome.Err != nil {
		s.Error = outcome.Err.Error()
	}

	content, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "summary.json"), content, 0o644)
}

func fileName(name string) string {
	return strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-")
}

func extension(contentType string) string {
	switch contentType {
	case schema.ContentTypeJSON:
		return "json"
	case schema.ContentTypeXML:
		return "xml"
	}

	return "txt"
}
