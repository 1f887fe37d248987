package json

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	ChannelStandard       = "STANDARD"
	MarketingCarrier      = "VA"
	DefaultCurrency       = "AUD"
	DefaultShopCurrency   = "EUR"
	ShopRequestType       = "ADVCAL30"
	BookingCategoryAll    = "ALL"
	EnabledSystemPOS      = "POS"
	PrimaryPassengerID    = "PAX1"
	PassengerEmailDomain  = "sabre.com"
	PreferredCommunication = "PREFERRED_COMMUNICATION_METHOD_SMS"
)

type Code struct {
	Code string `json:"code"`
}

type PointOfSale struct {
	Channel string `json:"channel"`
	Country Code   `json:"country"`
	City    Code   `json:"city"`
}

type EnabledSystem struct {
	Name string `json:"name,omitempty"`
}

type MarketingCarrierDesignator struct {
	AirlineDesignatorCode string `json:"airline_designator_code"`
}

type Sender struct {
	EnabledSystem    EnabledSystem              `json:"enabled_system"`
	MarketingCarrier MarketingCarrierDesignator `json:"marketing_carrier"`
}

type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type EmailAddress struct {
	Label        string              `json:"label"`
	PurposeCodes []string            `json:"purposeCodes"`
	Email        openapi_types.Email `json:"email"`
}

type StructuredPhone struct {
	CountryCallingCode string `json:"countryCallingCode"`
	AreaCode           string `json:"areaCode"`
	LocalNumber        string `json:"localNumber"`
	Extension          string `json:"extension,omitempty"`
}

type PhoneNumber struct {
	Label        string          `json:"label"`
	PurposeCodes []string        `json:"purposeCodes"`
	Structured   StructuredPhone `json:"structured"`
}

type Address struct {
	Label             string   `json:"label"`
	PurposeCodes      []string `json:"purposeCodes"`
	AddressLine1      string   `json:"addressLine1"`
	AddressLine2      string   `json:"addressLine2,omitempty"`
	City              string   `json:"city"`
	StateProvinceCode string   `json:"stateProvinceCode,omitempty"`
	PostalCode        string   `json:"postalCode"`
	CountryCode       string   `json:"countryCode"`
	PostOfficeBoxCode string   `json:"postOfficeBoxCode,omitempty"`
}

type Person struct {
	Title          string         `json:"title"`
	GivenName      string         `json:"givenName"`
	MiddleName     string         `json:"middleName,omitempty"`
	Surname        string         `json:"surname"`
	DateOfBirth    Date           `json:"dateOfBirth"`
	Gender         string         `json:"gender"`
	EmailAddresses []EmailAddress `json:"emailAddresses"`
	PhoneNumbers   []PhoneNumber  `json:"phoneNumbers"`
	Addresses      []Address      `json:"addresses"`
}

func homeAddress() Address {
	return Address{
		Label:        "homePostalAddress",
		PurposeCodes: []string{"ADDRESS_PURPOSE_HOME_ADDRESS"},
		AddressLine1: "Baker Street 23/14",
		City:         "Warsaw",
		PostalCode:   "32-100",
		CountryCode:  "PL",
	}
}

func destinationAddress() Address {
	return Address{
		Label:             "destinationPostalAddress",
		PurposeCodes:      []string{"ADDRESS_PURPOSE_DESTINATION_ADDRESS"},
		AddressLine1:      "12, Main road",
		AddressLine2:      "apt 123",
		City:              "New York",
		StateProvinceCode: "NJ",
		PostalCode:        "111-1234",
		CountryCode:       "US",
	}
}

func generalEmail(email string) EmailAddress {
	return EmailAddress{
		Label:        "EmailAddress",
		PurposeCodes: []string{"EMAIL_PURPOSE_GENERAL"},
		Email:        openapi_types.Email(email),
	}
}

func homePhone(areaCode string, localNumber string, extension string) PhoneNumber {
	return PhoneNumber{
		Label:        "HomePhone",
		PurposeCodes: []string{"PHONE_PURPOSE_HOME"},
		Structured: StructuredPhone{
			CountryCallingCode: "1",
			AreaCode:           areaCode,
			LocalNumber:        localNumber,
			Extension:          extension,
		},
	}
}
