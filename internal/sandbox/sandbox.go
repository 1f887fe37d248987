package sandbox

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	journeyID = "PJ1"
	currency  = "AUD"
)

var (
	ErrorUnknownOffer     = errors.New("unknown offer")
	ErrorUnknownOfferItem = errors.New("unknown offer item")
	ErrorUnknownPaxType   = errors.New("unknown passenger type")
	ErrorNoPassengers     = errors.New("no passengers")
)

// Fares are the prices the sandbox charges per passenger type.
var Fares = map[schema.PaxType]decimal.Decimal{
	schema.ADT: decimal.RequireFromString("250.00"),
	schema.CNN: decimal.RequireFromString("187.50"),
	schema.INF: decimal.RequireFromString("25.00"),
	schema.INS: decimal.RequireFromString("187.50"),
}

type offerItem struct {
	id          string
	passengerID string
	paxType     schema.PaxType
	price       decimal.Decimal
}

type offer struct {
	id    string
	items []offerItem
}

func (o offer) item(id string) (offerItem, bool) {
	for _, item := range o.items {
		if item.id == id {
			return item, true
		}
	}

	return offerItem{}, false
}

type order struct {
	id      string
	warning string
}

// Sandbox is an in-memory airline that shops, prices and books one way offers.
type Sandbox struct {
	signingKey []byte
	offers     map[string]offer
	mu         sync.Mutex
	now        func() time.Time
	newID      func() string
}

func New(signingKey string) *Sandbox {
	return &Sandbox{
		signingKey: []byte(signingKey),
		offers:     map[string]offer{},
		now:        time.Now,
		newID:      func() string { return strings.ToUpper(uuid.New().String()[:8]) },
	}
}

// shop stores a new offer holding one item per passenger.
func (s *Sandbox) shop(roster schema.Roster) (offer, error) {
	if len(roster) == 0 {
		return offer{}, ErrorNoPassengers
	}

	created := offer{id: "OFFER-" + s.newID()}

	for i, entry := range roster {
		price, ok := Fares[entry.Type]
		if !ok {
			return offer{}, fmt.Errorf("%w: %s", ErrorUnknownPaxType, entry.Type)
		}

		created.items = append(created.items, offerItem{
			id:          fmt.Sprintf("%s-%d", created.id, i+1),
			passengerID: entry.ID,
			paxType:     entry.Type,
			price:       price,
		})
	}

	s.mu.Lock()
	s.offers[created.id] = created
	s.mu.Unlock()

	return created, nil
}

func (s *Sandbox) offer(offerID string) (offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, ok := s.offers[offerID]
	if !ok {
		return offer{}, fmt.Errorf("%w: %s", ErrorUnknownOffer, offerID)
	}

	return found, nil
}

// price returns the selected items of a stored offer in the requested order.
func (s *Sandbox) price(offerID string, itemIDs []string) (offer, error) {
	found, err := s.offer(offerID)
	if err != nil {
		return offer{}, err
	}

	priced := offer{id: found.id}
	for _, itemID := range itemIDs {
		item, ok := found.item(itemID)
		if !ok {
			return offer{}, fmt.Errorf("%w: %s", ErrorUnknownOfferItem, itemID)
		}

		priced.items = append(priced.items, item)
	}

	return priced, nil
}

// createOrder books the accepted items. A payment that differs from the total
// of the items still books the order but carries a warning.
func (s *Sandbox) createOrder(offerID string, itemIDs []string, amount string) (order, error) {
	accepted, err := s.price(offerID, itemIDs)
	if err != nil {
		return order{}, err
	}

	total := decimal.Zero
	for _, item := range accepted.items {
		total = total.Add(item.price)
	}

	created := order{id: "ORDER-" + s.newID()}

	paid, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !paid.Equal(total) {
		created.warning = fmt.Sprintf("Payment amount %q does not match the order total %s", amount, passenger.FormatAmount(total))
	}

	return created, nil
}
