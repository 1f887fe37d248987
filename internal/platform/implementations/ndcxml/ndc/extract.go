package ndc

import (
	"fmt"
	"html"
	"strings"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/converting"
	"gopkg.in/xmlpath.v2"
)

// Paths match element local names, so any namespace prefix is accepted.
var (
	offersPath        = xmlpath.MustCompile("//Offer")
	offerItemsPath    = xmlpath.MustCompile("//OfferItem")
	offerIDPath       = xmlpath.MustCompile("OfferID")
	firstOfferIDPath  = xmlpath.MustCompile("//OfferID")
	offerItemPath     = xmlpath.MustCompile("OfferItem")
	offerItemIDPath   = xmlpath.MustCompile("OfferItemID")
	servicePath       = xmlpath.MustCompile("Service")
	paxRefIDPath      = xmlpath.MustCompile("PaxRefID")
	servicePaxRefPath = xmlpath.MustCompile("Service/PaxRefID")
	journeyRefIDPath  = xmlpath.MustCompile("OfferServiceAssociation/PaxJourneyRef/PaxJourneyRefID")
	totalAmountPath   = xmlpath.MustCompile("Price/TotalAmount")
	orderIDPath       = xmlpath.MustCompile("//OrderID")
	warningPath       = xmlpath.MustCompile("//Warning/DescText")
)

// Parse reads an NDC body. The payload may arrive entity escaped, either as
// the whole body or as the text of a wrapper such as a SOAP envelope. In both
// cases it is unescaped and parsed again.
func Parse(body []byte) (*xmlpath.Node, error) {
	text := strings.TrimSpace(string(body))
	if !strings.HasPrefix(text, "<") && strings.Contains(text, "&lt;") {
		text = html.UnescapeString(text)
	}

	if !strings.HasPrefix(text, "<") {
		return nil, fmt.Errorf("%w: body is not xml", platformErrors.ErrorInvalidResponseBody)
	}

	root, err := xmlpath.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", platformErrors.ErrorInvalidResponseBody, err.Error())
	}

	if hasNDCNodes(root) || !strings.Contains(text, "&lt;") {
		return root, nil
	}

	unwrapped, err := xmlpath.Parse(strings.NewReader(html.UnescapeString(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: escaped payload: %s", platformErrors.ErrorInvalidResponseBody, err.Error())
	}

	return unwrapped, nil
}

func hasNDCNodes(root *xmlpath.Node) bool {
	for _, path := range []*xmlpath.Path{offersPath, offerItemsPath, firstOfferIDPath, orderIDPath} {
		if path.Exists(root) {
			return true
		}
	}

	return false
}

func first(path *xmlpath.Path, node *xmlpath.Node) string {
	value, ok := path.String(node)
	if !ok {
		return ""
	}

	return strings.TrimSpace(value)
}

func all(path *xmlpath.Path, node *xmlpath.Node) []string {
	values := []string{}

	iter := path.Iter(node)
	for iter.Next() {
		value := strings.TrimSpace(iter.Node().String())
		if value != "" {
			values = append(values, value)
		}
	}

	return values
}

// Offers reads the offers of an AirShoppingRS in document order.
func Offers(body []byte) ([]schema.Offer, error) {
	root, err := Parse(body)
	if err != nil {
		return nil, err
	}

	offers := []schema.Offer{}

	offerIter := offersPath.Iter(root)
	for offerIter.Next() {
		offerNode := offerIter.Node()
		offer := schema.Offer{
			ID:    first(offerIDPath, offerNode),
			Items: []schema.OfferItem{},
		}

		itemIter := offerItemPath.Iter(offerNode)
		for itemIter.Next() {
			itemNode := itemIter.Node()

			offer.Items = append(offer.Items, schema.OfferItem{
				ID:           first(offerItemIDPath, itemNode),
				PassengerIDs: all(servicePaxRefPath, itemNode),
			})
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

// PricedOfferItems reads every offer item of an OfferPriceRS.
func PricedOfferItems(body []byte) ([]schema.PricedOfferItem, error) {
	root, err := Parse(body)
	if err != nil {
		return nil, err
	}

	items := []schema.PricedOfferItem{}

	itemIter := offerItemsPath.Iter(root)
	for itemIter.Next() {
		itemNode := itemIter.Node()

		item := schema.PricedOfferItem{
			ID:       first(offerItemIDPath, itemNode),
			Price:    first(totalAmountPath, itemNode),
			Services: []schema.PricedService{},
		}

		serviceIter := servicePath.Iter(itemNode)
		for serviceIter.Next() {
			serviceNode := serviceIter.Node()

			item.Services = append(item.Services, schema.PricedService{
				PassengerIDs: all(paxRefIDPath, serviceNode),
				JourneyIDs:   all(journeyRefIDPath, serviceNode),
			})
		}

		items = append(items, item)
	}

	return items, nil
}

// OfferID returns the first offer id of the document.
func OfferID(body []byte) (string, error) {
	root, err := Parse(body)
	if err != nil {
		return "", err
	}

	offerID := first(firstOfferIDPath, root)
	if offerID == "" {
		return "", platformErrors.ErrorOfferIdNotFound
	}

	return offerID, nil
}

func OrderResult(body []byte) (schema.OrderResult, error) {
	root, err := Parse(body)
	if err != nil {
		return schema.OrderResult{}, err
	}

	result := schema.OrderResult{
		WarningMessage: first(warningPath, root),
	}

	if orderID := first(orderIDPath, root); orderID != "" {
		result.OrderID = converting.PointerToValue(orderID)
	}

	return result, nil
}
