package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/testdata"
	"gopkg.in/yaml.v3"
)

var (
	ErrorUnexpectedStatus  = errors.New("unexpected status code")
	ErrorOrderNotCreated   = errors.New("order id not found")
	ErrorUnexpectedWarning = errors.New("unexpected warning")
	ErrorInvalidScenario   = errors.New("invalid scenario")
)

// Scenario is one end to end reservation test case.
type Scenario struct {
	Name            string          `yaml:"name"`
	Platform        string          `yaml:"platform"`
	PaxType         string          `yaml:"paxType"`
	Origin          string          `yaml:"origin"`
	Destination     string          `yaml:"destination"`
	Date            string          `yaml:"date"`
	Currency        string          `yaml:"currency"`
	StopAfter       schema.StepName `yaml:"stopAfter"`
	ExpectNoWarning bool            `yaml:"expectNoWarning"`

	// TestData names a test data file whose TestCase block overrides the
	// fields above. TestCase defaults to Name.
	TestData string `yaml:"testData"`
	TestCase string `yaml:"testCase"`
}

func (s Scenario) Trip() (schema.Trip, error) {
	date, err := schema.ParseTravelDate(s.Date)
	if err != nil {
		return schema.Trip{}, fmt.Errorf("%w: %s date %q", ErrorInvalidScenario, s.Name, s.Date)
	}

	return schema.Trip{
		Origin:      s.Origin,
		Destination: s.Destination,
		Date:        date,
		Currency:    s.Currency,
	}, nil
}

func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrorInvalidScenario)
	}

	if s.Platform == "" || s.PaxType == "" || s.Origin == "" || s.Destination == "" {
		return fmt.Errorf("%w: %s needs platform, paxType, origin and destination", ErrorInvalidScenario, s.Name)
	}

	switch s.StopAfter {
	case "", schema.Shop, schema.Price, schema.CreateOrder:
	default:
		return fmt.Errorf("%w: %s cannot stop after %q", ErrorInvalidScenario, s.Name, s.StopAfter)
	}

	_, err := s.Trip()

	return err
}

func (s Scenario) withTestData(data testdata.Data) Scenario {
	overrides := map[string]*string{
		"paxType":     &s.PaxType,
		"origin":      &s.Origin,
		"destination": &s.Destination,
		"date":        &s.Date,
		"currency":    &s.Currency,
		"platform":    &s.Platform,
	}

	for key, field := range overrides {
		if data.Has(key) {
			*field = data.String(key)
		}
	}

	return s
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads a scenario file. Test data paths are relative to the scenario file.
func Load(path string) ([]Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file scenarioFile
	err = yaml.Unmarshal(content, &file)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	testDataFiles := map[string]*testdata.File{}
	scenarios := make([]Scenario, 0, len(file.Scenarios))

	for _, s := range file.Scenarios {
		if s.TestData != "" {
			dataPath := s.TestData
			if !filepath.IsAbs(dataPath) {
				dataPath = filepath.Join(filepath.Dir(path), dataPath)
			}

			dataFile, ok := testDataFiles[dataPath]
			if !ok {
				dataFile, err = testdata.Load(dataPath)
				if err != nil {
					return nil, err
				}
				testDataFiles[dataPath] = dataFile
			}

			testCase := s.TestCase
			if testCase == "" {
				testCase = s.Name
			}

			data, err := dataFile.Case(testCase)
			if err != nil {
				return nil, err
			}

			s = s.withTestData(data)
		}

		err = s.Validate()
		if err != nil {
			return nil, err
		}

		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}
