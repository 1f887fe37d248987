package sandbox

import "encoding/xml"

const (
	messageNamespace = "http://www.iata.org/IATA/2015/EASD/00/IATA_OffersAndOrdersMessage"
	commonNamespace  = "http://www.iata.org/IATA/2015/EASD/00/IATA_OffersAndOrdersCommonTypes"
)

// Requests are matched on local names, so any namespace prefix is accepted.

type ndcPax struct {
	PaxID string `xml:"PaxID"`
	PTC   string `xml:"PTC"`
}

type ndcShopRQ struct {
	XMLName     xml.Name `xml:"IATA_AirShoppingRQ"`
	Origin      string   `xml:"Request>FlightRequest>FlightRequestOriginDestinationsCriteria>OriginDestCriteria>OriginDepCriteria>IATALocationCode"`
	Destination string   `xml:"Request>FlightRequest>FlightRequestOriginDestinationsCriteria>OriginDestCriteria>DestArrivalCriteria>IATALocationCode"`
	Passengers  []ndcPax `xml:"Request>PaxList>Pax"`
}

type ndcSelectedOfferItem struct {
	OfferItemRefID string `xml:"OfferItemRefID"`
	PaxRefID       string `xml:"PaxRefID"`
}

type ndcPriceRQ struct {
	XMLName xml.Name               `xml:"IATA_OfferPriceRQ"`
	OfferID string                 `xml:"Request>PricedOffer>SelectedOfferList>SelectedOffer>OfferRefID"`
	Items   []ndcSelectedOfferItem `xml:"Request>PricedOffer>SelectedOfferList>SelectedOffer>SelectedOfferItem"`
}

type ndcSelectedPricedOffer struct {
	OfferRefID string                 `xml:"OfferRefID"`
	Items      []ndcSelectedOfferItem `xml:"SelectedOfferItem"`
}

type ndcOrderCreateRQ struct {
	XMLName    xml.Name                 `xml:"IATA_OrderCreateRQ"`
	Offers     []ndcSelectedPricedOffer `xml:"Request>CreateOrder>AcceptSelectedQuotedOfferList>SelectedPricedOffer"`
	Passengers []ndcPax                 `xml:"Request>DataLists>PaxList>Pax"`
	Amount     string                   `xml:"Request>PaymentFunctions>PaymentProcessingDetails>Amount"`
}

// Responses are written with the cns prefix of the common types namespace.

type ndcNamespaces struct {
	Xmlns    string `xml:"xmlns,attr"`
	XmlnsCns string `xml:"xmlns:cns,attr"`
}

func namespaces() ndcNamespaces {
	return ndcNamespaces{Xmlns: messageNamespace, XmlnsCns: commonNamespace}
}

type ndcAssociation struct {
	PaxJourneyRefIDs []string `xml:"cns:PaxJourneyRef>cns:PaxJourneyRefID"`
}

type ndcService struct {
	ServiceID   string          `xml:"cns:ServiceID"`
	PaxRefID    string          `xml:"cns:PaxRefID"`
	Association *ndcAssociation `xml:"cns:OfferServiceAssociation,omitempty"`
}

type ndcAmount struct {
	CurCode string `xml:"CurCode,attr"`
	Value   string `xml:",chardata"`
}

type ndcOfferItem struct {
	OfferItemID string       `xml:"cns:OfferItemID"`
	TotalAmount *ndcAmount   `xml:"cns:Price>cns:TotalAmount,omitempty"`
	Services    []ndcService `xml:"cns:Service"`
}

type ndcOffer struct {
	OfferID   string         `xml:"cns:OfferID"`
	OwnerCode string         `xml:"cns:OwnerCode"`
	Items     []ndcOfferItem `xml:"cns:OfferItem"`
}

type ndcShopRS struct {
	XMLName xml.Name `xml:"IATA_AirShoppingRS"`
	ndcNamespaces
	Offers []ndcOffer `xml:"Response>cns:OffersGroup>cns:CarrierOffers>cns:Offer"`
}

type ndcPriceRS struct {
	XMLName xml.Name `xml:"IATA_OfferPriceRS"`
	ndcNamespaces
	OfferID   string         `xml:"Response>cns:PricedOffer>cns:OfferID"`
	OwnerCode string         `xml:"Response>cns:PricedOffer>cns:OwnerCode"`
	Items     []ndcOfferItem `xml:"Response>cns:PricedOffer>cns:OfferItem"`
}

type ndcWarning struct {
	TypeCode string `xml:"cns:TypeCode"`
	DescText string `xml:"cns:DescText"`
}

type ndcOrderViewRS struct {
	XMLName xml.Name `xml:"IATA_OrderViewRS"`
	ndcNamespaces
	OrderID   string       `xml:"Response>cns:Order>cns:OrderID"`
	OwnerCode string       `xml:"Response>cns:Order>cns:OwnerCode"`
	Warnings  []ndcWarning `xml:"Response>cns:Warning"`
}

type ndcError struct {
	Code     string `xml:"cns:Code"`
	DescText string `xml:"cns:DescText"`
}

type ndcErrorRS struct {
	XMLName xml.Name
	ndcNamespaces
	Error ndcError `xml:"cns:Error"`
}
