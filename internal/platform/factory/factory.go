package factory

import (
	"fmt"
	"net/http"
	"sync"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/ndcxml"
)

const (
	JSON = "json"
	XML  = "xml"
)

type Factory struct {
	persons   passenger.PersonGenerator
	transport http.RoundTripper
	platforms map[string]any
	mu        sync.Mutex
}

func (f *Factory) GetPlatform(name string) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.platforms[name]

	if !ok {
		switch name {

		// Register all platforms here
		case JSON:
			f.platforms[name] = jsonapi.NewWithTransport(f.persons, f.transport)
		case XML:
			f.platforms[name] = ndcxml.NewWithTransport(f.persons, f.transport)
		default:
			return nil, fmt.Errorf("%w: %s", platformErrors.ErrorUnknownPlatform, name)
		}
	}

	return f.platforms[name], nil
}

func NewFactory(persons passenger.PersonGenerator) *Factory {
	return NewFactoryWithTransport(persons, http.DefaultTransport)
}

func NewFactoryWithTransport(persons passenger.PersonGenerator, transport http.RoundTripper) *Factory {
	return &Factory{
		persons:   persons,
		transport: transport,
		platforms: make(map[string]any),
	}
}
