package errors

import "errors"

var (
	ErrorNotImplemented       = errors.New("not implemented")
	ErrorUnknownPlatform      = errors.New("unknown platform")
	ErrorInvalidFormat        = errors.New("invalid paxType format")
	ErrorUnknownPaxType       = errors.New("unknown pax type")
	ErrorOfferIdNotFound      = errors.New("offer id not found")
	ErrorOfferItemNotFound    = errors.New("offer item id not found")
	ErrorMissingRequiredField = errors.New("missing required field")
	ErrorPriceParse           = errors.New("unable to parse price")
	ErrorInvalidResponseBody  = errors.New("invalid response body")
)
