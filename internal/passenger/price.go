package passenger

import (
	"fmt"
	"strings"

	platformErrors "bitbucket.org/crgw/reservations-e2e/internal/platform/errors"
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/shopspring/decimal"
)

const amountPlaces = 2

// TotalPrice sums the passenger prices and rounds half away from zero to two
// places. A price that is not a number fails the whole sum.
func TotalPrice(details schema.PassengerDetails) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, detail := range details {
		price, err := decimal.NewFromString(strings.TrimSpace(detail.Price))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q for %s", platformErrors.ErrorPriceParse, detail.Price, detail.PassengerID)
		}

		total = total.Add(price)
	}

	return total.Round(amountPlaces), nil
}

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(amountPlaces)
}

// FormattedTotal is TotalPrice as it goes on the wire.
func FormattedTotal(details schema.PassengerDetails) (string, error) {
	total, err := TotalPrice(details)
	if err != nil {
		return "", err
	}

	return FormatAmount(total), nil
}
