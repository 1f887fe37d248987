package passenger_test

import (
	"testing"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestSelectOfferItems(t *testing.T) {
	roster := schema.Roster{
		{ID: "PAX1", Type: schema.ADT},
		{ID: "PAX2", Type: schema.CNN},
	}

	t.Run("should bind every passenger to its own offer item", func(t *testing.T) {
		offers := []schema.Offer{
			{
				ID: "OFF1",
				Items: []schema.OfferItem{
					{ID: "OI1", PassengerIDs: []string{"PAX1"}},
					{ID: "OI2", PassengerIDs: []string{"PAX2"}},
				},
			},
		}

		selection, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.Nil(t, err)
		assert.Equal(t, map[string]string{
			schema.OfferIDKey: "OFF1",
			"PAX1":            "OI1",
			"PAX2":            "OI2",
		}, selection.Map())
	})

	t.Run("should not hand out a claimed offer item twice", func(t *testing.T) {
		offers := []schema.Offer{
			{
				ID: "OFF1",
				Items: []schema.OfferItem{
					{ID: "OI1", PassengerIDs: []string{"PAX1", "PAX2"}},
					{ID: "OI2", PassengerIDs: []string{"PAX1", "PAX2"}},
				},
			},
		}

		selection, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.Nil(t, err)
		assert.Equal(t, []schema.SelectedOfferItem{
			{PassengerID: "PAX1", OfferItemID: "OI1"},
			{PassengerID: "PAX2", OfferItemID: "OI2"},
		}, selection.Items)
	})

	t.Run("should ignore offer items referencing passengers outside the roster", func(t *testing.T) {
		offers := []schema.Offer{
			{
				ID: "OFF1",
				Items: []schema.OfferItem{
					{ID: "OI9", PassengerIDs: []string{"PAX1", "PAX9"}},
					{ID: "OI1", PassengerIDs: []string{"PAX1"}},
					{ID: "OI2", PassengerIDs: []string{"PAX2"}},
				},
			},
		}

		selection, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.Nil(t, err)

		for _, item := range selection.Items {
			assert.NotEqual(t, "OI9", item.OfferItemID)
		}

		offerItemID, ok := selection.OfferItemID("PAX1")
		assert.True(t, ok)
		assert.Equal(t, "OI1", offerItemID)
	})

	t.Run("should fail when a passenger runs out of offer items", func(t *testing.T) {
		offers := []schema.Offer{
			{
				ID: "OFF1",
				Items: []schema.OfferItem{
					{ID: "OI1", PassengerIDs: []string{"PAX1", "PAX2"}},
				},
			},
		}

		_, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.ErrorIs(t, err, platformErrors.ErrorOfferItemNotFound)
		assert.ErrorContains(t, err, "PAX2")
	})

	t.Run("should fail without an offer id", func(t *testing.T) {
		offers := []schema.Offer{
			{Items: []schema.OfferItem{{ID: "OI1", PassengerIDs: []string{"PAX1"}}}},
		}

		_, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.ErrorIs(t, err, platformErrors.ErrorOfferIdNotFound)
	})

	t.Run("should apply the offer id policy", func(t *testing.T) {
		offers := []schema.Offer{
			{ID: "OFF1", Items: []schema.OfferItem{{ID: "OI1", PassengerIDs: []string{"PAX1"}}}},
			{ID: "OFF2", Items: []schema.OfferItem{{ID: "OI2", PassengerIDs: []string{"PAX2"}}}},
		}

		last, err := passenger.SelectOfferItems(roster, offers, schema.LastOfferWins)
		assert.Nil(t, err)
		assert.Equal(t, "OFF2", last.OfferID)

		first, err := passenger.SelectOfferItems(roster, offers, schema.FirstOfferWins)
		assert.Nil(t, err)
		assert.Equal(t, "OFF1", first.OfferID)
	})
}
