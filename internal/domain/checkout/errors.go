package checkout

import "errors"

var (
	ErrPaymentDeclined = errors.New("payment declined")
	ErrInvalidCard     = errors.New("invalid card data")
)
