package sandbox

import (
	"encoding/xml"
	"net/http"
	"strings"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/gin-gonic/gin"
)

const ownerCode = "VA"

type ndcTwin struct {
	sandbox *Sandbox
}

func (t *ndcTwin) Shop(c *gin.Context, params any) {
	rq := params.(*ndcShopRQ)

	roster := make(schema.Roster, len(rq.Passengers))
	for i, pax := range rq.Passengers {
		roster[i] = schema.RosterEntry{ID: strings.TrimSpace(pax.PaxID), Type: schema.PaxType(strings.TrimSpace(pax.PTC))}
	}

	created, err := t.sandbox.shop(roster)
	if err != nil {
		t.reject(c, "IATA_AirShoppingRS", http.StatusBadRequest, err)
		return
	}

	items := make([]ndcOfferItem, len(created.items))
	for i, item := range created.items {
		items[i] = ndcOfferItem{
			OfferItemID: item.id,
			Services:    []ndcService{{ServiceID: item.id + "-S", PaxRefID: item.passengerID}},
		}
	}

	t.reply(c, ndcShopRS{
		ndcNamespaces: namespaces(),
		Offers:        []ndcOffer{{OfferID: created.id, OwnerCode: ownerCode, Items: items}},
	})
}

func (t *ndcTwin) Price(c *gin.Context, params any) {
	rq := params.(*ndcPriceRQ)

	itemIDs := make([]string, len(rq.Items))
	for i, item := range rq.Items {
		itemIDs[i] = strings.TrimSpace(item.OfferItemRefID)
	}

	priced, err := t.sandbox.price(strings.TrimSpace(rq.OfferID), itemIDs)
	if err != nil {
		t.reject(c, "IATA_OfferPriceRS", statusOf(err), err)
		return
	}

	items := make([]ndcOfferItem, len(priced.items))
	for i, item := range priced.items {
		items[i] = ndcOfferItem{
			OfferItemID: item.id,
			TotalAmount: &ndcAmount{CurCode: currency, Value: passenger.FormatAmount(item.price)},
			Services: []ndcService{
				{
					ServiceID:   item.id + "-S",
					PaxRefID:    item.passengerID,
					Association: &ndcAssociation{PaxJourneyRefIDs: []string{journeyID}},
				},
			},
		}
	}

	t.reply(c, ndcPriceRS{
		ndcNamespaces: namespaces(),
		OfferID:       priced.id,
		OwnerCode:     ownerCode,
		Items:         items,
	})
}

func (t *ndcTwin) CreateOrder(c *gin.Context, params any) {
	rq := params.(*ndcOrderCreateRQ)

	if len(rq.Offers) == 0 {
		t.reject(c, "IATA_OrderViewRS", http.StatusBadRequest, ErrorUnknownOffer)
		return
	}

	// Every selected priced offer of one order points at the same offer.
	offerID := strings.TrimSpace(rq.Offers[0].OfferRefID)
	itemIDs := []string{}
	for _, selected := range rq.Offers {
		for _, item := range selected.Items {
			itemIDs = append(itemIDs, strings.TrimSpace(item.OfferItemRefID))
		}
	}

	created, err := t.sandbox.createOrder(offerID, itemIDs, rq.Amount)
	if err != nil {
		t.reject(c, "IATA_OrderViewRS", statusOf(err), err)
		return
	}

	rs := ndcOrderViewRS{
		ndcNamespaces: namespaces(),
		OrderID:       created.id,
		OwnerCode:     ownerCode,
	}
	if created.warning != "" {
		rs.Warnings = []ndcWarning{{TypeCode: "PAYMENT_MISMATCH", DescText: created.warning}}
	}

	t.reply(c, rs)
}

func (t *ndcTwin) reply(c *gin.Context, rs any) {
	body, err := xml.MarshalIndent(rs, "", "  ")
	if err != nil {
		web.HandleError(c, http.StatusInternalServerError, "Unable to write NDC response", err)
		return
	}

	c.Data(http.StatusOK, schema.ContentTypeXML, append([]byte(xml.Header), body...))
}

func (t *ndcTwin) reject(c *gin.Context, root string, status int, err error) {
	web.Logger(c).Warn().Err(err).Int("code", status).Msg("NDC request rejected")

	rs := ndcErrorRS{
		XMLName:       xml.Name{Local: root},
		ndcNamespaces: namespaces(),
		Error:         ndcError{Code: http.StatusText(status), DescText: err.Error()},
	}

	body, _ := xml.MarshalIndent(rs, "", "  ")
	c.Data(status, schema.ContentTypeXML, append([]byte(xml.Header), body...))
	c.Abort()
}
