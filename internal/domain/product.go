package domain

import "github.com/shopspring/decimal"

// Product is the catalog row shared by carts and orders. Stock is only
// mutated through the repository's decrement/restore operations, always
// inside an explicit transaction.
type Product struct {
	ID         int64
	Name       string
	Price      decimal.Decimal
	Stock      int
	Active     bool
	CategoryID int64
}

// Address is a delivery address referenced by orders. DestinationCode is the
// postal prefix the shipping strategy prices against.
type Address struct {
	ID              int64
	CustomerID      string
	Street          string
	City            string
	DestinationCode string
}
