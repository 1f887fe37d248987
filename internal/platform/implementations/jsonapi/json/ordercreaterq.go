package json

import (
	"fmt"

	"bitbucket.org/crgw/reservations-e2e/internal/passenger"
	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
)

type OrderCreateRQ struct {
	PointOfSale      PointOfSale       `json:"point_of_sale"`
	AcceptOffers     []AcceptOffer     `json:"acceptOffers"`
	PaymentFunctions []PaymentFunction `json:"paymentFunctions"`
	Passengers       []OrderPassenger  `json:"passengers"`
}

type AcceptOffer struct {
	OfferID    string            `json:"offerId"`
	OfferItems []AcceptOfferItem `json:"offerItems"`
}

type AcceptOfferItem struct {
	OfferItemID string `json:"offerItemId"`
}

type PaymentFunction struct {
	OfferAssociations        []OfferAssociation       `json:"offerAssociations"`
	PaymentProcessingSummary PaymentProcessingSummary `json:"paymentProcessingSummary"`
}

type OfferAssociation struct {
	OfferID      string   `json:"offerId"`
	OfferItemIDs []string `json:"offerItemIds"`
}

type PaymentProcessingSummary struct {
	PaymentMethod        string               `json:"paymentMethod"`
	TypeCodeIata         string               `json:"typeCodeIata"`
	Amount               Amount               `json:"amount"`
	PayerInfo            Person               `json:"payerInfo"`
	PaymentMethodDetails PaymentMethodDetails `json:"paymentMethodDetails"`
}

type PaymentMethodDetails struct {
	PaymentCard PaymentCard `json:"paymentCard"`
}

type CardHolderName struct {
	FullName string `json:"fullName"`
}

type PaymentCard struct {
	CardHolderName  CardHolderName `json:"cardHolderName"`
	BillingAddress  Address        `json:"billingAddress"`
	TokenizedCardID string         `json:"tokenizedCardId"`
	SecurityCode    string         `json:"securityCode"`
	CardVendorCode  string         `json:"cardVendorCode"`
	ExpirationDate  string         `json:"expirationDate"`
}

type OrderPassenger struct {
	ID                           string   `json:"id"`
	PassengerTypeCode            string   `json:"passengerTypeCode"`
	Person                       Person   `json:"person"`
	IdentityDocuments            []string `json:"identityDocuments"`
	IsPrimaryPassenger           bool     `json:"isPrimaryPassenger"`
	PreferredCommunicationMethod string   `json:"preferredCommunicationMethod"`
}

// NewOrderCreateRQ accepts the priced offer items of every roster passenger
// and pays their total in one payment.
func NewOrderCreateRQ(
	roster schema.Roster,
	details schema.PassengerDetails,
	offerID string,
	persons passenger.PersonGenerator,
	configuration schema.Configuration,
) (OrderCreateRQ, error) {
	if offerID == "" {
		return OrderCreateRQ{}, fmt.Errorf("%w: offerId", platformErrors.ErrorMissingRequiredField)
	}

	offerItemIDs := make([]string, 0, len(roster))
	acceptItems := make([]AcceptOfferItem, 0, len(roster))
	passengers := make([]OrderPassenger, 0, len(roster))

	for _, entry := range roster {
		attributes, ok := details.Get(entry.ID)
		if !ok {
			return OrderCreateRQ{}, fmt.Errorf("%w: passenger details of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		if attributes.OfferItemID == "" {
			return OrderCreateRQ{}, fmt.Errorf("%w: offerItemId of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		if attributes.PaxTypeCode == "" {
			return OrderCreateRQ{}, fmt.Errorf("%w: paxTypeCode of %s", platformErrors.ErrorMissingRequiredField, entry.ID)
		}

		offerItemIDs = append(offerItemIDs, attributes.OfferItemID)
		acceptItems = append(acceptItems, AcceptOfferItem{OfferItemID: attributes.OfferItemID})
		passengers = append(passengers, orderPassenger(entry.ID, attributes.PaxTypeCode, persons.Person(attributes.PaxTypeCode)))
	}

	total, err := passenger.FormattedTotal(details)
	if err != nil {
		return OrderCreateRQ{}, err
	}

	return OrderCreateRQ{
		PointOfSale: pointOfSale(configuration),
		AcceptOffers: []AcceptOffer{
			{
				OfferID:    offerID,
				OfferItems: acceptItems,
			},
		},
		PaymentFunctions: []PaymentFunction{
			{
				OfferAssociations: []OfferAssociation{
					{
						OfferID:      offerID,
						OfferItemIDs: offerItemIDs,
					},
				},
				PaymentProcessingSummary: PaymentProcessingSummary{
					PaymentMethod: "PAYMENT_METHOD_PAYMENT_CARD",
					TypeCodeIata:  "CC",
					Amount: Amount{
						Currency: currency(configuration),
						Amount:   total,
					},
					PayerInfo:            payer(),
					PaymentMethodDetails: paymentCard(),
				},
			},
		},
		Passengers: passengers,
	}, nil
}

func orderPassenger(passengerID string, paxType schema.PaxType, person passenger.Person) OrderPassenger {
	gender := "GENDER_FEMALE"
	if person.Gender == passenger.Male {
		gender = "GENDER_MALE"
	}

	return OrderPassenger{
		ID:                passengerID,
		PassengerTypeCode: string(paxType),
		Person: Person{
			Title:      person.Title,
			GivenName:  person.GivenName,
			MiddleName: person.MiddleName,
			Surname:    person.Surname,
			DateOfBirth: Date{
				Year:  person.DateOfBirth.Year(),
				Month: int(person.DateOfBirth.Month()),
				Day:   person.DateOfBirth.Day(),
			},
			Gender:         gender,
			EmailAddresses: []EmailAddress{generalEmail(person.Email(PassengerEmailDomain))},
			PhoneNumbers:   []PhoneNumber{homePhone("907", "123456789", "012")},
			Addresses:      []Address{homeAddress(), destinationAddress()},
		},
		IdentityDocuments:            []string{},
		IsPrimaryPassenger:           passengerID == PrimaryPassengerID,
		PreferredCommunicationMethod: PreferredCommunication,
	}
}

func payer() Person {
	return Person{
		Title:     "Mr.",
		GivenName: "John",
		Surname:   "Doe",
		DateOfBirth: Date{
			Year:  1989,
			Month: 1,
			Day:   11,
		},
		Gender:         "GENDER_MALE",
		EmailAddresses: []EmailAddress{generalEmail("john.smith@example.com")},
		PhoneNumbers:   []PhoneNumber{homePhone("001", "1234567", "1234")},
		Addresses:      []Address{homeAddress(), destinationAddress()},
	}
}

func paymentCard() PaymentMethodDetails {
	return PaymentMethodDetails{
		PaymentCard: PaymentCard{
			CardHolderName: CardHolderName{FullName: "John Doe"},
			BillingAddress: Address{
				Label:             "homePostalAddress",
				PurposeCodes:      []string{"ADDRESS_PURPOSE_HOME_ADDRESS"},
				AddressLine1:      "Baker Street 23",
				AddressLine2:      "Apartment 14",
				City:              "Warsaw",
				StateProvinceCode: "TX",
				PostalCode:        "32-100",
				CountryCode:       "PL",
				PostOfficeBoxCode: "PO Box",
			},
			TokenizedCardID: "5123P10JZCC02346",
			SecurityCode:    "123",
			CardVendorCode:  "CA",
			ExpirationDate:  "1229",
		},
	}
}
