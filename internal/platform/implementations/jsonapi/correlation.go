package jsonapi

import (
	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

func (a *jsonAPI) OfferSelection(roster schema.Roster, body []byte) (schema.OfferSelection, error) {
	var rs json.ShopRS

	err := json.Decode(json.ShopResponse, body, &rs)
	if err != nil {
		return schema.OfferSelection{}, err
	}

	return passenger.SelectOfferItems(roster, rs.ToOffers(), a.offerIDPolicy)
}

func (a *jsonAPI) PassengerDetails(roster schema.Roster, body []byte) (schema.PassengerDetails, error) {
	var rs json.PriceRS

	err := json.Decode(json.PriceResponse, body, &rs)
	if err != nil {
		return nil, err
	}

	return passenger.Aggregate(roster, rs.PricedOfferItems()), nil
}

func (a *jsonAPI) OfferID(body []byte) (string, error) {
	var rs json.PriceRS

	err := json.Decode(json.PriceResponse, body, &rs)
	if err != nil {
		return "", err
	}

	return rs.OfferID()
}

func (a *jsonAPI) OrderResult(body []byte) (schema.OrderResult, error) {
	var rs json.OrderCreateRS

	err := json.Decode(json.OrderCreateResponse, body, &rs)
	if err != nil {
		return schema.OrderResult{}, err
	}

	return rs.Result(), nil
}
