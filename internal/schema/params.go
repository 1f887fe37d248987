package schema

import "time"

// Endpoint is where and how one workflow step is sent.
type Endpoint struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
	Bucket  *AttachmentsBucket
}

// Configuration holds the agency and point of sale values of one tenant.
type Configuration struct {
	Currency     string `json:"currency" yaml:"currency"`
	OwnerCode    string `json:"ownerCode" yaml:"ownerCode"`
	AgentDuty    string `json:"agentDuty" yaml:"agentDuty"`
	CityCode     string `json:"cityCode" yaml:"cityCode"`
	CountryCode  string `json:"countryCode" yaml:"countryCode"`
	LocationCode string `json:"locationCode" yaml:"locationCode"`
	SellerOrgID  string `json:"sellerOrgId" yaml:"sellerOrgId"`
	CarrierOrgID string `json:"carrierOrgId" yaml:"carrierOrgId"`
}

func (c Configuration) WithDefaults(defaults Configuration) Configuration {
	pick := func(value string, fallback string) string {
		if value == "" {
			return fallback
		}

		return value
	}

	return Configuration{
		Currency:     pick(c.Currency, defaults.Currency),
		OwnerCode:    pick(c.OwnerCode, defaults.OwnerCode),
		AgentDuty:    pick(c.AgentDuty, defaults.AgentDuty),
		CityCode:     pick(c.CityCode, defaults.CityCode),
		CountryCode:  pick(c.CountryCode, defaults.CountryCode),
		LocationCode: pick(c.LocationCode, defaults.LocationCode),
		SellerOrgID:  pick(c.SellerOrgID, defaults.SellerOrgID),
		CarrierOrgID: pick(c.CarrierOrgID, defaults.CarrierOrgID),
	}
}

type ShopParams struct {
	Endpoint
	Configuration Configuration
	Trip          Trip
	Roster        Roster
}

type PriceParams struct {
	Endpoint
	Configuration Configuration
	Selection     OfferSelection
}

type CreateOrderParams struct {
	Endpoint
	Configuration Configuration
	Roster        Roster
	Details       PassengerDetails
	OfferID       string
}
