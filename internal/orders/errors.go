package orders

import "errors"

var (
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	ErrCancellationNotAllowed  = errors.New("order can no longer be cancelled")
)
