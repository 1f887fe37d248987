package json

import "bitbucket.org/crgw/reservations-e2e/internal/schema"

type PriceRQ struct {
	PointOfSale PointOfSale  `json:"point_of_sale"`
	Sender      Sender       `json:"sender"`
	Request     PriceRequest `json:"request"`
	Diagnostics struct{}     `json:"diagnostics"`
}

type PriceRequest struct {
	SelectedOffers     []SelectedOffer    `json:"selected_offers"`
	OverrideCurrency   string             `json:"override_currency"`
	ResponseParameters ResponseParameters `json:"response_parameters"`
}

type SelectedOffer struct {
	ID                 string              `json:"id"`
	SelectedOfferItems []SelectedOfferItem `json:"selected_offer_items"`
}

type SelectedOfferItem struct {
	ID            string   `json:"id"`
	PassengerIDs  []string `json:"passenger_ids"`
	SelectedFares []string `json:"selected_fares"`
}

type ResponseParameters struct {
	DisableAvailabilityCheck bool   `json:"disable_availability_check"`
	DisableTaxCalculation    bool   `json:"disable_tax_calculation"`
	BookingCategory          string `json:"booking_category"`
}

// NewPriceRQ selects one offer item per passenger of the selection.
func NewPriceRQ(selection schema.OfferSelection, configuration schema.Configuration) PriceRQ {
	items := make([]SelectedOfferItem, len(selection.Items))
	for i, item := range selection.Items {
		items[i] = SelectedOfferItem{
			ID:            item.OfferItemID,
			PassengerIDs:  []string{item.PassengerID},
			SelectedFares: []string{},
		}
	}

	return PriceRQ{
		PointOfSale: pointOfSale(configuration),
		Sender: Sender{
			MarketingCarrier: MarketingCarrierDesignator{AirlineDesignatorCode: MarketingCarrier},
		},
		Request: PriceRequest{
			SelectedOffers: []SelectedOffer{
				{
					ID:                 selection.OfferID,
					SelectedOfferItems: items,
				},
			},
			OverrideCurrency: currency(configuration),
			ResponseParameters: ResponseParameters{
				DisableAvailabilityCheck: false,
				DisableTaxCalculation:    false,
				BookingCategory:          BookingCategoryAll,
			},
		},
	}
}

func pointOfSale(configuration schema.Configuration) PointOfSale {
	country := configuration.CountryCode
	if country == "" {
		country = "AU"
	}

	city := configuration.CityCode
	if city == "" {
		city = "SYD"
	}

	return PointOfSale{
		Channel: ChannelStandard,
		Country: Code{Code: country},
		City:    Code{Code: city},
	}
}

func currency(configuration schema.Configuration) string {
	if configuration.Currency == "" {
		return DefaultCurrency
	}

	return configuration.Currency
}
