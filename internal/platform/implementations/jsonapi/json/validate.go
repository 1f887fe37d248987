package json

import (
	"context"
	_ "embed"
	jsonEncoding "encoding/json"
	"fmt"
	"sync"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"github.com/getkin/kin-openapi/openapi3"
)

type Kind string

const (
	ShopResponse        Kind = "ShopRS"
	PriceResponse       Kind = "PriceRS"
	OrderCreateResponse Kind = "OrderCreateRS"
)

//go:embed openapi.yaml
var openapiDocument []byte

var (
	loadDocument sync.Once
	document     *openapi3.T
	documentErr  error
)

func Document() (*openapi3.T, error) {
	loadDocument.Do(func() {
		loader := openapi3.NewLoader()

		document, documentErr = loader.LoadFromData(openapiDocument)
		if documentErr != nil {
			return
		}

		documentErr = document.Validate(context.Background())
	})

	return document, documentErr
}

// Decode checks body against the schema of kind and unmarshals it into target.
func Decode(kind Kind, body []byte, target any) error {
	doc, err := Document()
	if err != nil {
		return err
	}

	schemaRef, ok := doc.Components.Schemas[string(kind)]
	if !ok || schemaRef.Value == nil {
		return fmt.Errorf("%w: unknown schema %s", platformErrors.ErrorInvalidResponseBody, kind)
	}

	var value any
	err = jsonEncoding.Unmarshal(body, &value)
	if err != nil {
		return fmt.Errorf("%w: %s", platformErrors.ErrorInvalidResponseBody, err.Error())
	}

	err = schemaRef.Value.VisitJSON(value)
	if err != nil {
		return fmt.Errorf("%w: %s", platformErrors.ErrorInvalidResponseBody, err.Error())
	}

	err = jsonEncoding.Unmarshal(body, target)
	if err != nil {
		return fmt.Errorf("%w: %s", platformErrors.ErrorInvalidResponseBody, err.Error())
	}

	return nil
}
