package cart

import "errors"

var (
	ErrProductUnavailable = errors.New("product is unavailable")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)
