package shipping

import (
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ItemWeightKg approximates every unit of quantity as half a kilogram. The
// catalog carries no per-product weight.
const ItemWeightKg = 0.5

// Strategy maps a destination and a total weight to a freight amount.
type Strategy interface {
	Calculate(destinationCode string, totalWeightKg float64) (decimal.Decimal, error)
}

// TotalWeight applies the per-item approximation over the cart lines.
func TotalWeight(items []domain.CartItem) float64 {
	units := 0
	for _, item := range items {
		units += item.Quantity
	}
	return float64(units) * ItemWeightKg
}

// BandedStrategy charges a base fare plus a per-kilogram rate, scaled by the
// destination's postal band (first digit of the destination code).
type BandedStrategy struct {
	Base  decimal.Decimal
	PerKg decimal.Decimal
}

func NewBandedStrategy() *BandedStrategy {
	return &BandedStrategy{
		Base:  decimal.NewFromFloat(10.00),
		PerKg: decimal.NewFromFloat(2.50),
	}
}

func (s *BandedStrategy) Calculate(destinationCode string, totalWeightKg float64) (decimal.Decimal, error) {
	weight := decimal.NewFromFloat(totalWeightKg)
	freight := s.Base.Add(s.PerKg.Mul(weight))
	return freight.Mul(bandMultiplier(destinationCode)).Round(2), nil
}

// bandMultiplier scales freight by how far the postal band is from the
// distribution center (band 0).
func bandMultiplier(destinationCode string) decimal.Decimal {
	if destinationCode == "" {
		return decimal.NewFromInt(1)
	}
	band := int(destinationCode[0] - '0')
	if band < 0 || band > 9 {
		return decimal.NewFromInt(1)
	}
	// 1.0 for band 0 up to 1.9 for band 9.
	return decimal.NewFromInt(1).Add(decimal.New(int64(band), -1))
}

// FlatStrategy ships everything for the same price regardless of weight or
// destination.
type FlatStrategy struct {
	Amount decimal.Decimal
}

func NewFlatStrategy(amount decimal.Decimal) *FlatStrategy {
	return &FlatStrategy{Amount: amount}
}

func (s *FlatStrategy) Calculate(string, float64) (decimal.Decimal, error) {
	return s.Amount, nil
}
