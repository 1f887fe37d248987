package ndc

import (
	"embed"
	"strings"
)

//go:embed templates/*.xml
var templates embed.FS

const (
	shopTemplate                = "shop.xml"
	paxTemplate                 = "pax.xml"
	priceTemplate               = "price.xml"
	selectedOfferItemTemplate   = "selectedofferitem.xml"
	createOrderTemplate         = "createorder.xml"
	orderPaxTemplate            = "orderpax.xml"
	offerAssociationTemplate    = "offerassociation.xml"
	selectedPricedOfferTemplate = "selectedpricedoffer.xml"
)

func template(name string) string {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}

	return strings.TrimRight(string(content), "\n")
}
