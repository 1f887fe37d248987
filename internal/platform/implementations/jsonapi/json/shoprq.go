package json

import (
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

type ShopRQ struct {
	Request     ShopRequest `json:"request"`
	Sender      Sender      `json:"sender"`
	PointOfSale PointOfSale `json:"point_of_sale"`
}

type ShopRequest struct {
	OriginDestinationsCriteria []OriginDestinationCriteria `json:"origin_destinations_criteria"`
	Passengers                 []ShopPassenger             `json:"passengers"`
	RequestType                string                      `json:"requestType"`
	OfferCriteria              OfferCriteria               `json:"offer_criteria"`
	Currency                   string                      `json:"currency"`
}

type OriginDestinationCriteria struct {
	OriginDepartureCriteria    DepartureCriteria `json:"origin_departure_criteria"`
	DestinationArrivalCriteria ArrivalCriteria   `json:"destination_arrival_criteria"`
}

type DepartureCriteria struct {
	Date        Date   `json:"date"`
	AirportCode string `json:"airportCode"`
}

type ArrivalCriteria struct {
	AirportCode string `json:"airportCode"`
}

type ShopPassenger struct {
	PassengerTypeCode string `json:"passenger_type_code"`
	ID                string `json:"id"`
}

type OfferCriteria struct {
	Program Program `json:"program"`
}

type Program struct {
	ProgramAccountIDs []string `json:"programAccountIds"`
}

// NewShopRQ builds a one way shop request with one passenger per roster entry.
func NewShopRQ(trip schema.Trip, roster schema.Roster) ShopRQ {
	currency := trip.Currency
	if currency == "" {
		currency = DefaultShopCurrency
	}

	passengers := make([]ShopPassenger, len(roster))
	for i, entry := range roster {
		passengers[i] = ShopPassenger{
			PassengerTypeCode: string(entry.Type),
			ID:                entry.ID,
		}
	}

	return ShopRQ{
		Request: ShopRequest{
			OriginDestinationsCriteria: []OriginDestinationCriteria{
				{
					OriginDepartureCriteria: DepartureCriteria{
						Date: Date{
							Year:  trip.Date.Year,
							Month: trip.Date.Month,
							Day:   trip.Date.Day,
						},
						AirportCode: trip.Origin,
					},
					DestinationArrivalCriteria: ArrivalCriteria{
						AirportCode: trip.Destination,
					},
				},
			},
			Passengers:  passengers,
			RequestType: ShopRequestType,
			OfferCriteria: OfferCriteria{
				Program: Program{
					ProgramAccountIDs: []string{},
				},
			},
			Currency: currency,
		},
		Sender: Sender{
			EnabledSystem:    EnabledSystem{Name: EnabledSystemPOS},
			MarketingCarrier: MarketingCarrierDesignator{AirlineDesignatorCode: MarketingCarrier},
		},
		PointOfSale: PointOfSale{
			Channel: ChannelStandard,
			Country: Code{Code: "CA"},
			City:    Code{Code: "ORD"},
		},
	}
}
