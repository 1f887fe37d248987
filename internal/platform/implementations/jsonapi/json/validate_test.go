package json_test

import (
	"testing"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/jsonapi/json"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	doc, err := json.Document()
	require.NoError(t, err)

	for _, kind := range []json.Kind{json.ShopResponse, json.PriceResponse, json.OrderCreateResponse} {
		assert.Contains(t, doc.Components.Schemas, string(kind))
	}
}

func TestDecode(t *testing.T) {
	t.Run("should decode a shop response into offers", func(t *testing.T) {
		body := []byte(`{
			"offers": [{
				"id": "OFF1",
				"offerItems": [
					{"id": "OI1", "services": [{"passengerIds": ["PAX1"]}, {"passengerIds": ["PAX2"]}]}
				]
			}]
		}`)

		var rs json.ShopRS
		require.NoError(t, json.Decode(json.ShopResponse, body, &rs))

		assert.Equal(t, []schema.Offer{
			{ID: "OFF1", Items: []schema.OfferItem{{ID: "OI1", PassengerIDs: []string{"PAX1", "PAX2"}}}},
		}, rs.ToOffers())
	})

	t.Run("should decode a price response into priced offer items", func(t *testing.T) {
		body := []byte(`{
			"pricedOffer": {
				"definition": {"id": "OFF1"},
				"offerItems": [{
					"id": "OI1",
					"price": {"totalAmount": {"amount": "250.00", "currency": "AUD"}},
					"services": [{
						"passengerIds": ["PAX1"],
						"offerServiceAssociation": {"journey": {"passengerJourneyIds": ["J1", "J2"]}}
					}]
				}]
			}
		}`)

		var rs json.PriceRS
		require.NoError(t, json.Decode(json.PriceResponse, body, &rs))

		assert.Equal(t, []schema.PricedOfferItem{
			{ID: "OI1", Price: "250.00", Services: []schema.PricedService{{PassengerIDs: []string{"PAX1"}, JourneyIDs: []string{"J1", "J2"}}}},
		}, rs.PricedOfferItems())

		offerID, err := rs.OfferID()
		assert.Nil(t, err)
		assert.Equal(t, "OFF1", offerID)
	})

	t.Run("should report a missing price offer id", func(t *testing.T) {
		var rs json.PriceRS
		require.NoError(t, json.Decode(json.PriceResponse, []byte(`{"pricedOffer": {"offerItems": []}}`), &rs))

		_, err := rs.OfferID()
		assert.ErrorIs(t, err, platformErrors.ErrorOfferIdNotFound)
	})

	t.Run("should decode order results", func(t *testing.T) {
		var withOrder json.OrderCreateRS
		require.NoError(t, json.Decode(json.OrderCreateResponse, []byte(`{"order": {"id": "ORD1"}, "warnings": [{"description": "price changed"}]}`), &withOrder))

		result := withOrder.Result()
		assert.True(t, result.HasOrderID())
		assert.Equal(t, "ORD1", *result.OrderID)
		assert.Equal(t, "price changed", result.WarningMessage)

		var withoutOrder json.OrderCreateRS
		require.NoError(t, json.Decode(json.OrderCreateResponse, []byte(`{}`), &withoutOrder))

		result = withoutOrder.Result()
		assert.Nil(t, result.OrderID)
		assert.Equal(t, "", result.WarningMessage)
	})

	t.Run("should reject bodies breaking the schema", func(t *testing.T) {
		tests := []struct {
			name string
			kind json.Kind
			body string
		}{
			{"not json", json.ShopResponse, `<html>`},
			{"missing offers", json.ShopResponse, `{"errors": []}`},
			{"offer item without id", json.ShopResponse, `{"offers": [{"id": "OFF1", "offerItems": [{"services": []}]}]}`},
			{"numeric price", json.PriceResponse, `{"pricedOffer": {"offerItems": [{"id": "OI1", "price": {"totalAmount": {"amount": 250}}, "services": []}]}}`},
			{"order id is not a string", json.OrderCreateResponse, `{"order": {"id": 1}}`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				var target map[string]any
				err := json.Decode(test.kind, []byte(test.body), &target)
				assert.ErrorIs(t, err, platformErrors.ErrorInvalidResponseBody)
			})
		}
	})
}
