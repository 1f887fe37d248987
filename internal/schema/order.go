package schema

// OrderResult is what a create-order response yields. OrderID is nil when the
// response carried no order id.
type OrderResult struct {
	OrderID        *string `json:"orderId,omitempty"`
	WarningMessage string  `json:"warningMessage"`
}

func (r OrderResult) HasOrderID() bool {
	return r.OrderID != nil && *r.OrderID != ""
}
