package ndc

import (
	"fmt"
	"strings"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/xmltemplate"
)

// ShopRQ renders an AirShoppingRQ for a one way trip.
func ShopRQ(configuration schema.Configuration, trip schema.Trip, roster schema.Roster) string {
	request := xmltemplate.Table{
		"$DESTINATION": escape(trip.Origin),
		"$ARRIVAL":     escape(trip.Destination),
		"$DATE":        trip.Date.String(),
		"#{@PAXLIST}":  PaxList(roster),
	}

	if trip.Currency != "" {
		request["$CURRENCY"] = escape(trip.Currency)
	}

	return xmltemplate.Substitute(template(shopTemplate), configurationTable(configuration).With(request))
}

func PaxList(roster schema.Roster) string {
	fragments := make([]string, len(roster))

	for i, entry := range roster {
		fragments[i] = xmltemplate.Substitute(template(paxTemplate), xmltemplate.Table{
			"$PAXID":   escape(entry.ID),
			"$PAXTYPE": string(entry.Type),
		})
	}

	return strings.Join(fragments, "\n")
}

// PriceRQ renders an OfferPriceRQ selecting one offer item per passenger.
func PriceRQ(configuration schema.Configuration, selection schema.OfferSelection) string {
	table := configurationTable(configuration).With(xmltemplate.Table{
		"$OFFERID":              escape(selection.OfferID),
		"#{@SELECTEDOFFERITEM}": SelectedOfferItems(selection),
	})

	return xmltemplate.Substitute(template(priceTemplate), table)
}

func SelectedOfferItems(selection schema.OfferSelection) string {
	fragments := make([]string, len(selection.Items))

	for i, item := range selection.Items {
		fragments[i] = xmltemplate.Substitute(template(selectedOfferItemTemplate), xmltemplate.Table{
			"$PAXID":             escape(item.PassengerID),
			"$OFFER_ITEM_REF_ID": escape(item.OfferItemID),
		})
	}

	return strings.Join(fragments, "\n")
}

// OrderCreateRQ renders an OrderCreateRQ accepting the priced offer items of
// every roster passenger and paying their total.
func OrderCreateRQ(
	configuration schema.Configuration,
	roster schema.Roster,
	details schema.PassengerDetails,
	offerID string,
	persons passenger.PersonGenerator,
) (string, error) {
	if offerID == "" {
		return "", fmt.Errorf("%w: offerId", platformErrors.ErrorMissingRequiredField)
	}

	selected := make(schema.PassengerDetails, 0, len(roster))
	for _, entry := range roster {
		attributes, ok := details.Get(entry.ID)
		if !ok {
			return "", fmt.Errorf("%w: passenger details of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		if attributes.OfferItemID == "" {
			return "", fmt.Errorf("%w: offerItemId of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		if attributes.PaxTypeCode == "" {
			return "", fmt.Errorf("%w: paxTypeCode of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		selected = append(selected, schema.PassengerDetail{PassengerID: entry.ID, PassengerAttributes: attributes})
	}

	total, err := passenger.FormattedTotal(details)
	if err != nil {
		return "", err
	}

	base := configurationTable(configuration)

	table := base.With(xmltemplate.Table{
		"#{@PAX}":                   OrderPaxList(selected, persons),
		"#{@OFFER_ASSOCIATION}":     OfferAssociations(selected, offerID),
		"#{@SELECTED_PRICED_OFFER}": SelectedPricedOffers(selected, offerID, base["$OWNER_CODE"]),
		"$TOTAL_AMOUNT":             total,
	})

	return xmltemplate.Substitute(template(createOrderTemplate), table), nil
}

func OrderPaxList(details schema.PassengerDetails, persons passenger.PersonGenerator) string {
	fragments := make([]string, len(details))

	for i, detail := range details {
		person := persons.Person(detail.PaxTypeCode)

		fragments[i] = xmltemplate.Substitute(template(orderPaxTemplate), xmltemplate.Table{
			"$PAXID":         escape(detail.PassengerID),
			"$PAXTYPE":       string(detail.PaxTypeCode),
			"$FIRST_NAME":    escape(person.GivenName),
			"$LAST_NAME":     escape(person.Surname),
			"$MIDDLE_NAME":   escape(person.MiddleName),
			"$TITLE":         escape(person.Title),
			"$DATE_OF_BIRTH": person.DateOfBirth.Format(schema.DateFormat),
			"$GENDER_CODE":   string(person.Gender),
		})
	}

	return strings.Join(fragments, "\n")
}

func OfferAssociations(details schema.PassengerDetails, offerID string) string {
	fragments := make([]string, len(details))

	for i, detail := range details {
		fragments[i] = xmltemplate.Substitute(template(offerAssociationTemplate), xmltemplate.Table{
			"$OFFER_REF_ID":      escape(offerID),
			"$OFFER_ITEM_REF_ID": escape(detail.OfferItemID),
		})
	}

	return strings.Join(fragments, "\n")
}

func SelectedPricedOffers(details schema.PassengerDetails, offerID string, ownerCode string) string {
	fragments := make([]string, len(details))

	for i, detail := range details {
		fragments[i] = xmltemplate.Substitute(template(selectedPricedOfferTemplate), xmltemplate.Table{
			"$OFFER_REF_ID":      escape(offerID),
			"$OFFER_ITEM_REF_ID": escape(detail.OfferItemID),
			"$OWNER_CODE":        ownerCode,
			"$PAXID":             escape(detail.PassengerID),
		})
	}

	return strings.Join(fragments, "\n")
}
