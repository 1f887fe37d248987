package json

import (
	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/converting"
)

type OrderCreateRS struct {
	Order    *Order    `json:"order,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

type Order struct {
	ID string `json:"id"`
}

type Warning struct {
	Code        string `json:"code,omitempty"`
	Description string `json:"description"`
}

func (r *OrderCreateRS) Result() schema.OrderResult {
	result := schema.OrderResult{}

	if r.Order != nil && r.Order.ID != "" {
		result.OrderID = converting.PointerToValue(r.Order.ID)
	}

	if len(r.Warnings) > 0 {
		result.WarningMessage = r.Warnings[0].Description
	}

	return result
}
