package ndc

import (
	"encoding/xml"
	"strings"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/xmltemplate"
)

var DefaultConfiguration = schema.Configuration{
	Currency:     "AUD",
	OwnerCode:    "VA",
	AgentDuty:    "EK",
	CityCode:     "SYD",
	CountryCode:  "AU",
	LocationCode: "SYD",
	SellerOrgID:  "SABRE",
	CarrierOrgID: "VA",
}

// configurationTable holds the placeholders every NDC message shares.
func configurationTable(configuration schema.Configuration) xmltemplate.Table {
	c := configuration.WithDefaults(DefaultConfiguration)

	return xmltemplate.Table{
		"$CURRENCY":      escape(c.Currency),
		"$OWNER_CODE":    escape(c.OwnerCode),
		"$AGENT_DUTY":    escape(c.AgentDuty),
		"$CITY_CODE":     escape(c.CityCode),
		"$COUNTRY_CODE":  escape(c.CountryCode),
		"$LOCATION_CODE": escape(c.LocationCode),
		"$SELLER_ORGID":  escape(c.SellerOrgID),
		"$CARRIER_ORGID": escape(c.CarrierOrgID),
	}
}

// escape makes a scalar value safe to place in element text or an attribute.
func escape(value string) string {
	var builder strings.Builder
	_ = xml.EscapeText(&builder, []byte(value))

	return builder.String()
}
