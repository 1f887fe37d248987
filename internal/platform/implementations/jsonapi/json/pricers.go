package json

import (
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

type PriceRS struct {
	PricedOffer PricedOffer `json:"pricedOffer"`
	DataLists   *DataLists  `json:"dataLists,omitempty"`
}

type PricedOffer struct {
	Definition *OfferDefinition  `json:"definition,omitempty"`
	OfferItems []PricedOfferItem `json:"offerItems"`
}

type OfferDefinition struct {
	ID string `json:"id"`
}

type PricedOfferItem struct {
	ID       string    `json:"id"`
	Price    ItemPrice `json:"price"`
	Services []Service `json:"services"`
}

type ItemPrice struct {
	TotalAmount Amount `json:"totalAmount"`
}

type Amount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

type DataLists struct {
	Passengers []DataListPassenger `json:"passengers"`
}

type DataListPassenger struct {
	ID                string `json:"id"`
	PassengerTypeCode string `json:"passengerTypeCode"`
}

func (r *PriceRS) PricedOfferItems() []schema.PricedOfferItem {
	items := make([]schema.PricedOfferItem, len(r.PricedOffer.OfferItems))

	for i, item := range r.PricedOffer.OfferItems {
		services := make([]schema.PricedService, len(item.Services))
		for j, service := range item.Services {
			services[j] = schema.PricedService{
				PassengerIDs: service.PassengerIDs,
				JourneyIDs:   service.JourneyIDs(),
			}
		}

		items[i] = schema.PricedOfferItem{
			ID:       item.ID,
			Price:    item.Price.TotalAmount.Amount,
			Services: services,
		}
	}

	return items
}

func (r *PriceRS) OfferID() (string, error) {
	if r.PricedOffer.Definition == nil || r.PricedOffer.Definition.ID == "" {
		return "", platformErrors.ErrorOfferIdNotFound
	}

	return r.PricedOffer.Definition.ID, nil
}
