package sandbox

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/gin-gonic/gin"
)

type jsonTwin struct {
	sandbox *Sandbox
}

func (t *jsonTwin) Shop(c *gin.Context, params any) {
	rq := params.(*json.ShopRQ)

	roster := make(schema.Roster, len(rq.Request.Passengers))
	for i, p := range rq.Request.Passengers {
		roster[i] = schema.RosterEntry{ID: p.ID, Type: schema.PaxType(p.PassengerTypeCode)}
	}

	created, err := t.sandbox.shop(roster)
	if err != nil {
		web.HandleError(c, http.StatusBadRequest, "Unable to shop offers", err)
		return
	}

	items := make([]json.ShopOfferItem, len(created.items))
	for i, item := range created.items {
		items[i] = json.ShopOfferItem{
			ID:       item.id,
			Services: []json.Service{{ID: item.id + "-S", PassengerIDs: []string{item.passengerID}}},
		}
	}

	c.JSON(http.StatusOK, json.ShopRS{
		Offers: []json.ShopOffer{{ID: created.id, OfferItems: items}},
	})
}

func (t *jsonTwin) Price(c *gin.Context, params any) {
	rq := params.(*json.PriceRQ)

	if len(rq.Request.SelectedOffers) == 0 {
		web.HandleError(c, http.StatusBadRequest, "Unable to price offer", ErrorUnknownOffer)
		return
	}

	selected := rq.Request.SelectedOffers[0]
	itemIDs := make([]string, len(selected.SelectedOfferItems))
	for i, item := range selected.SelectedOfferItems {
		itemIDs[i] = item.ID
	}

	priced, err := t.sandbox.price(selected.ID, itemIDs)
	if err != nil {
		web.HandleError(c, statusOf(err), "Unable to price offer", err)
		return
	}

	items := make([]json.PricedOfferItem, len(priced.items))
	passengers := make([]json.DataListPassenger, len(priced.items))
	for i, item := range priced.items {
		items[i] = json.PricedOfferItem{
			ID: item.id,
			Price: json.ItemPrice{
				TotalAmount: json.Amount{Amount: passenger.FormatAmount(item.price), Currency: currency},
			},
			Services: []json.Service{
				{
					ID:           item.id + "-S",
					PassengerIDs: []string{item.passengerID},
					OfferServiceAssociation: &json.OfferServiceAssociation{
						Journey: &json.Journey{PassengerJourneyIDs: []string{journeyID}},
					},
				},
			},
		}
		passengers[i] = json.DataListPassenger{ID: item.passengerID, PassengerTypeCode: string(item.paxType)}
	}

	c.JSON(http.StatusOK, json.PriceRS{
		PricedOffer: json.PricedOffer{
			Definition: &json.OfferDefinition{ID: priced.id},
			OfferItems: items,
		},
		DataLists: &json.DataLists{Passengers: passengers},
	})
}

func (t *jsonTwin) CreateOrder(c *gin.Context, params any) {
	rq := params.(*json.OrderCreateRQ)

	if len(rq.AcceptOffers) == 0 || len(rq.PaymentFunctions) == 0 {
		web.HandleError(c, http.StatusBadRequest, "Unable to create order", errors.New("missing accepted offer or payment"))
		return
	}

	accepted := rq.AcceptOffers[0]
	itemIDs := make([]string, len(accepted.OfferItems))
	for i, item := range accepted.OfferItems {
		itemIDs[i] = item.OfferItemID
	}

	created, err := t.sandbox.createOrder(accepted.OfferID, itemIDs, rq.PaymentFunctions[0].PaymentProcessingSummary.Amount.Amount)
	if err != nil {
		web.HandleError(c, statusOf(err), "Unable to create order", err)
		return
	}

	rs := json.OrderCreateRS{Order: &json.Order{ID: created.id}}
	if created.warning != "" {
		rs.Warnings = []json.Warning{{Code: "PAYMENT_MISMATCH", Description: created.warning}}
	}

	c.JSON(http.StatusOK, rs)
}

func statusOf(err error) int {
	if errors.Is(err, ErrorUnknownOffer) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
