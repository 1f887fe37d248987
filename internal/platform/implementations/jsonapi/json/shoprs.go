package json

import "bitbucket.org/crgw/reservations-e2e/internal/schema"

type ShopRS struct {
	Offers []ShopOffer `json:"offers"`
}

type ShopOffer struct {
	ID         string          `json:"id"`
	OfferItems []ShopOfferItem `json:"offerItems"`
}

type ShopOfferItem struct {
	ID       string    `json:"id"`
	Services []Service `json:"services"`
}

type Service struct {
	ID                      string                   `json:"id,omitempty"`
	PassengerIDs            []string                 `json:"passengerIds"`
	OfferServiceAssociation *OfferServiceAssociation `json:"offerServiceAssociation,omitempty"`
}

type OfferServiceAssociation struct {
	Journey *Journey `json:"journey,omitempty"`
}

type Journey struct {
	PassengerJourneyIDs []string `json:"passengerJourneyIds"`
}

func (s Service) JourneyIDs() []string {
	if s.OfferServiceAssociation == nil || s.OfferServiceAssociation.Journey == nil {
		return nil
	}

	return s.OfferServiceAssociation.Journey.PassengerJourneyIDs
}

func (r *ShopRS) ToOffers() []schema.Offer {
	offers := make([]schema.Offer, len(r.Offers))

	for i, offer := range r.Offers {
		items := make([]schema.OfferItem, len(offer.OfferItems))

		for j, item := range offer.OfferItems {
			passengerIDs := []string{}
			for _, service := range item.Services {
				passengerIDs = append(passengerIDs, service.PassengerIDs...)
			}

			items[j] = schema.OfferItem{
				ID:           item.ID,
				PassengerIDs: passengerIDs,
			}
		}

		offers[i] = schema.Offer{
			ID:    offer.ID,
			Items: items,
		}
	}

	return offers
}
