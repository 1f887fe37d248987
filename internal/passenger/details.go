package passenger

import (
	"strings"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

type detailFields struct {
	attributes  schema.PassengerAttributes
	offerItemID bool
	price       bool
	journeyIDs  bool
}

// Aggregate folds the priced offer items of a price response into one detail
// per roster passenger. Each attribute keeps the first value written to it.
// Journey ids are written by the first service that carries any.
func Aggregate(roster schema.Roster, items []schema.PricedOfferItem) schema.PassengerDetails {
	fields := make(map[string]*detailFields, len(roster))

	for _, item := range items {
		for _, service := range item.Services {
			for _, passengerID := range service.PassengerIDs {
				paxType, ok := roster.Type(passengerID)
				if !ok {
					continue
				}

				field, ok := fields[passengerID]
				if !ok {
					field = &detailFields{}
					fields[passengerID] = field
				}

				if !field.offerItemID {
					field.attributes.OfferItemID = item.ID
					field.offerItemID = true
				}

				if !field.price {
					field.attributes.Price = item.Price
					field.price = true
				}

				if !field.journeyIDs && len(service.JourneyIDs) > 0 {
					field.attributes.PassengerJourneyIDs = strings.Join(service.JourneyIDs, ",")
					field.journeyIDs = true
				}

				field.attributes.PaxTypeCode = paxType
			}
		}
	}

	details := make(schema.PassengerDetails, 0, len(fields))
	for _, entry := range roster {
		field, ok := fields[entry.ID]
		if !ok {
			continue
		}

		details = append(details, schema.PassengerDetail{
			PassengerID:         entry.ID,
			PassengerAttributes: field.attributes,
		})
	}

	return details
}
