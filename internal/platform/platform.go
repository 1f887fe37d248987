package platform

import (
	"fmt"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/interfaces"
)

type factory interface {
	GetPlatform(string) (any, error)
}

// Platform is a reservations API the workflow can drive end to end.
type Platform interface {
	interfaces.WithShop
	interfaces.WithPrice
	interfaces.WithCreateOrder
	interfaces.WithCorrelation
}

func Get(f factory, name string) (Platform, error) {
	implementation, err := f.GetPlatform(name)
	if err != nil {
		return nil, err
	}

	if _, ok := implementation.(interfaces.WithShop); !ok {
		return nil, fmt.Errorf("%w: %s shop", platformErrors.ErrorNotImplemented, name)
	}

	if _, ok := implementation.(interfaces.WithPrice); !ok {
		return nil, fmt.Errorf("%w: %s price", platformErrors.ErrorNotImplemented, name)
	}

	if _, ok := implementation.(interfaces.WithCreateOrder); !ok {
		return nil, fmt.Errorf("%w: %s create order", platformErrors.ErrorNotImplemented, name)
	}

	platform, ok := implementation.(Platform)
	if !ok {
		return nil, fmt.Errorf("%w: %s correlation", platformErrors.ErrorNotImplemented, name)
	}

	return platform, nil
}
