package passenger

import (
	"fmt"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

// SelectOfferItems binds every roster passenger to one offer item of the shop
// response. Offer items are visited in offer order then item order, and the
// first unclaimed item referencing the passenger is taken. Items that reference
// a passenger outside the roster are never taken.
func SelectOfferItems(roster schema.Roster, offers []schema.Offer, policy schema.OfferIDPolicy) (schema.OfferSelection, error) {
	offerID := selectOfferID(offers, policy)
	if offerID == "" {
		return schema.OfferSelection{}, platformErrors.ErrorOfferIdNotFound
	}

	candidates := []schema.OfferItem{}
	for _, offer := range offers {
		for _, item := range offer.Items {
			if item.ID == "" || len(item.PassengerIDs) == 0 || !referencesOnly(roster, item) {
				continue
			}

			candidates = append(candidates, item)
		}
	}

	claimed := make(map[string]bool, len(candidates))
	selection := schema.OfferSelection{
		OfferID: offerID,
		Items:   make([]schema.SelectedOfferItem, 0, len(roster)),
	}

	for _, entry := range roster {
		found := false

		for _, item := range candidates {
			if claimed[item.ID] || !item.References(entry.ID) {
				continue
			}

			claimed[item.ID] = true
			selection.Items = append(selection.Items, schema.SelectedOfferItem{
				PassengerID: entry.ID,
				OfferItemID: item.ID,
			})
			found = true

			break
		}

		if !found {
			return schema.OfferSelection{}, fmt.Errorf("%w: %s", platformErrors.ErrorOfferItemNotFound, entry.ID)
		}
	}

	return selection, nil
}

func selectOfferID(offers []schema.Offer, policy schema.OfferIDPolicy) string {
	offerID := ""

	for _, offer := range offers {
		if offer.ID == "" {
			continue
		}

		if policy == schema.FirstOfferWins {
			return offer.ID
		}

		offerID = offer.ID
	}

	return offerID
}

func referencesOnly(roster schema.Roster, item schema.OfferItem) bool {
	for _, passengerID := range item.PassengerIDs {
		if !roster.Has(passengerID) {
			return false
		}
	}

	return true
}
