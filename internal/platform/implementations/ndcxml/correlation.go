package ndcxml

import (
	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/ndcxml/ndc"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

func (a *ndcAPI) OfferSelection(roster schema.Roster, body []byte) (schema.OfferSelection, error) {
	offers, err := ndc.Offers(body)
	if err != nil {
		return schema.OfferSelection{}, err
	}

	return passenger.SelectOfferItems(roster, offers, a.offerIDPolicy)
}

func (a *ndcAPI) PassengerDetails(roster schema.Roster, body []byte) (schema.PassengerDetails, error) {
	items, err := ndc.PricedOfferItems(body)
	if err != nil {
		return nil, err
	}

	return passenger.Aggregate(roster, items), nil
}

func (a *ndcAPI) OfferID(body []byte) (string, error) {
	return ndc.OfferID(body)
}

func (a *ndcAPI) OrderResult(body []byte) (schema.OrderResult, error) {
	return ndc.OrderResult(body)
}
