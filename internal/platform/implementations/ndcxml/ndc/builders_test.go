package ndc_test

import (
	"strings"
	"testing"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/platform/implementations/ndcxml/ndc"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/xmlpath.v2"
)

type fixedPersons struct{}

func (fixedPersons) Person(paxType schema.PaxType) passenger.Person {
	return passenger.Person{
		Title:       "Ms",
		GivenName:   "Zoë",
		MiddleName:  "Ann",
		Surname:     "O'Neil & Sons",
		DateOfBirth: time.Date(1990, time.April, 3, 0, 0, 0, 0, time.UTC),
		Gender:      passenger.Female,
	}
}

func values(t *testing.T, xml string, path string) []string {
	root, err := ndc.Parse([]byte(xml))
	require.NoError(t, err)

	found := []string{}
	iter := xmlpath.MustCompile(path).Iter(root)
	for iter.Next() {
		found = append(found, strings.TrimSpace(iter.Node().String()))
	}

	return found
}

func roster() schema.Roster {
	return schema.Roster{
		{ID: "PAX1", Type: schema.ADT},
		{ID: "PAX2", Type: schema.CNN},
	}
}

func details() schema.PassengerDetails {
	return schema.PassengerDetails{
		{PassengerID: "PAX1", PassengerAttributes: schema.PassengerAttributes{OfferItemID: "OI1", Price: "250.00", PaxTypeCode: schema.ADT}},
		{PassengerID: "PAX2", PassengerAttributes: schema.PassengerAttributes{OfferItemID: "OI2", Price: "187.50", PaxTypeCode: schema.CNN}},
	}
}

func TestShopRQ(t *testing.T) {
	xml := ndc.ShopRQ(schema.Configuration{SellerOrgID: "AGENCY1"}, schema.Trip{
		Origin:      "SYD",
		Destination: "MEL",
		Date:        schema.TravelDate{Day: 9, Month: 7, Year: 2026},
	}, roster())

	assert.NotContains(t, xml, "$")
	assert.NotContains(t, xml, "#{@")
	assert.Equal(t, []string{"SYD"}, values(t, xml, "//OriginDepCriteria/IATALocationCode"))
	assert.Equal(t, []string{"MEL"}, values(t, xml, "//DestArrivalCriteria/IATALocationCode"))
	assert.Equal(t, []string{"2026-07-09"}, values(t, xml, "//OriginDepCriteria/Date"))
	assert.Equal(t, []string{"PAX1", "PAX2"}, values(t, xml, "//PaxList/Pax/PaxID"))
	assert.Equal(t, []string{"ADT", "CNN"}, values(t, xml, "//PaxList/Pax/PTC"))
	assert.Equal(t, []string{"AGENCY1", "VA"}, values(t, xml, "//ParticipatingOrg/OrgID"))
	assert.Equal(t, []string{"AUD"}, values(t, xml, "//CurCode"))
}

func TestPriceRQ(t *testing.T) {
	xml := ndc.PriceRQ(schema.Configuration{OwnerCode: "NZ"}, schema.OfferSelection{
		OfferID: "OFF1",
		Items: []schema.SelectedOfferItem{
			{PassengerID: "PAX1", OfferItemID: "OI1"},
			{PassengerID: "PAX2", OfferItemID: "OI2"},
		},
	})

	assert.NotContains(t, xml, "$")
	assert.Equal(t, []string{"OFF1"}, values(t, xml, "//SelectedOffer/OfferRefID"))
	assert.Equal(t, []string{"NZ"}, values(t, xml, "//SelectedOffer/OwnerCode"))
	assert.Equal(t, []string{"OI1", "OI2"}, values(t, xml, "//SelectedOfferItem/OfferItemRefID"))
	assert.Equal(t, []string{"PAX1", "PAX2"}, values(t, xml, "//SelectedOfferItem/PaxRefID"))
}

func TestOrderCreateRQ(t *testing.T) {
	t.Run("should render passengers, associations and the total", func(t *testing.T) {
		xml, err := ndc.OrderCreateRQ(schema.Configuration{}, roster(), details(), "OFF1", fixedPersons{})
		require.NoError(t, err)

		assert.NotContains(t, xml, "$")
		assert.NotContains(t, xml, "#{@")
		assert.Equal(t, []string{"437.50"}, values(t, xml, "//PaymentProcessingDetails/Amount"))
		assert.Equal(t, []string{"PAX1", "PAX2"}, values(t, xml, "//DataLists/PaxList/Pax/PaxID"))
		assert.Equal(t, []string{"ADT", "CNN"}, values(t, xml, "//DataLists/PaxList/Pax/PTC"))
		assert.Equal(t, []string{"O'Neil & Sons", "O'Neil & Sons"}, values(t, xml, "//Individual/Surname"))
		assert.Equal(t, []string{"1990-04-03", "1990-04-03"}, values(t, xml, "//Individual/Birthdate"))
		assert.Equal(t, []string{"F", "F"}, values(t, xml, "//Individual/GenderCode"))
		assert.Equal(t, []string{"OFF1", "OFF1"}, values(t, xml, "//OfferAssociation/OfferRefID"))
		assert.Equal(t, []string{"OI1", "OI2"}, values(t, xml, "//OfferAssociation/OfferItemRefID"))
		assert.Equal(t, []string{"OI1", "OI2"}, values(t, xml, "//SelectedPricedOffer/SelectedOfferItem/OfferItemRefID"))
		assert.Equal(t, []string{"VA", "VA"}, values(t, xml, "//SelectedPricedOffer/OwnerCode"))
	})

	t.Run("should fail fast on incomplete details", func(t *testing.T) {
		_, err := ndc.OrderCreateRQ(schema.Configuration{}, roster(), details()[:1], "OFF1", fixedPersons{})
		assert.ErrorIs(t, err, platformErrors.ErrorMissingRequiredField)
		assert.ErrorContains(t, err, "PAX2")

		_, err = ndc.OrderCreateRQ(schema.Configuration{}, roster(), details(), "", fixedPersons{})
		assert.ErrorIs(t, err, platformErrors.ErrorMissingRequiredField)
	})

	t.Run("should fail on unparsable prices", func(t *testing.T) {
		broken := details()
		broken[0].Price = ""

		_, err := ndc.OrderCreateRQ(schema.Configuration{}, roster(), broken, "OFF1", fixedPersons{})
		assert.ErrorIs(t, err, platformErrors.ErrorPriceParse)
	})
}
