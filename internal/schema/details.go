package schema

type PricedService struct {
	PassengerIDs []string
	JourneyIDs   []string
}

type PricedOfferItem struct {
	ID       string
	Price    string
	Services []PricedService
}

type PassengerAttributes struct {
	OfferItemID         string  `json:"offerItemId"`
	Price               string  `json:"price"`
	PassengerJourneyIDs string  `json:"passengerJourneyIds"`
	PaxTypeCode         PaxType `json:"paxTypeCode"`
}

type PassengerDetail struct {
	PassengerID string `json:"passengerId"`
	PassengerAttributes
}

// PassengerDetails is ordered like the roster it was built from.
type PassengerDetails []PassengerDetail

func (d PassengerDetails) Get(passengerID string) (PassengerAttributes, bool) {
	for _, detail := range d {
		if detail.PassengerID == passengerID {
			return detail.PassengerAttributes, true
		}
	}

	return PassengerAttributes{}, false
}

func (d PassengerDetails) Map() map[string]map[string]string {
	mapped := make(map[string]map[string]string, len(d))
	for _, detail := range d {
		mapped[detail.PassengerID] = map[string]string{
			"offerItemId":         detail.OfferItemID,
			"price":               detail.Price,
			"passengerJourneyIds": detail.PassengerJourneyIDs,
			"paxTypeCode":         string(detail.PaxTypeCode),
		}
	}

	return mapped
}
