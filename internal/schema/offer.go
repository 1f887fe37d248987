package schema

// OfferIDKey is the reserved key holding the offer id in the flattened selection.
const OfferIDKey = "OfferId"

type Offer struct {
	ID    string
	Items []OfferItem
}

type OfferItem struct {
	ID           string
	PassengerIDs []string
}

func (i OfferItem) References(passengerID string) bool {
	for _, id := range i.PassengerIDs {
		if id == passengerID {
			return true
		}
	}

	return false
}

// OfferIDPolicy decides which offer id is kept when a response carries several offers.
type OfferIDPolicy int

const (
	LastOfferWins OfferIDPolicy = iota
	FirstOfferWins
)

func (p OfferIDPolicy) String() string {
	if p == FirstOfferWins {
		return "first-offer-wins"
	}

	return "last-offer-wins"
}

type SelectedOfferItem struct {
	PassengerID string `json:"passengerId"`
	OfferItemID string `json:"offerItemId"`
}

type OfferSelection struct {
	OfferID string              `json:"offerId"`
	Items   []SelectedOfferItem `json:"items"`
}

func (s OfferSelection) OfferItemID(passengerID string) (string, bool) {
	for _, item := range s.Items {
		if item.PassengerID == passengerID {
			return item.OfferItemID, true
		}
	}

	return "", false
}

// Map flattens the selection into passenger id -> offer item id plus OfferIDKey.
func (s OfferSelection) Map() map[string]string {
	mapped := make(map[string]string, len(s.Items)+1)
	mapped[OfferIDKey] = s.OfferID

	for _, item := range s.Items {
		mapped[item.PassengerID] = item.OfferItemID
	}

	return mapped
}
