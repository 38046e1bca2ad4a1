package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to checkout")
	ErrPaymentRejected    = errors.New("payment was rejected")
	ErrTransactionFailure = errors.New("checkout transaction failure")
)
