package cart

import "github.com/shopspring/decimal"

// DiscountPercent is the website discount applied to every price.
const DiscountPercent = 5

var discountFactor = decimal.NewFromInt(100 - DiscountPercent).Shift(-2)

// ApplyDiscount returns price with the website discount taken off, rounded
// half away from zero to two decimals.
func ApplyDiscount(price float64) float64 {
	return decimal.NewFromFloat(price).Mul(discountFactor).Round(2).InexactFloat64()
}

// MinorUnits converts a total to the integer amount the payment processor
// expects.
func MinorUnits(total float64) int64 {
	return decimal.NewFromFloat(total).Shift(2).Round(0).IntPart()
}
