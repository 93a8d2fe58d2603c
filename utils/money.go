package utils

import "github.com/shopspring/decimal"

// PercentOf returns amount*percent/100 rounded half away from zero.
func PercentOf(amount, percent int) int {
	v := decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromInt(int64(percent))).
		Div(decimal.NewFromInt(100)).
		Round(0)
	return int(v.IntPart())
}

// ScalePoints applies a tier multiplier to a base point value.
func ScalePoints(base int, multiplier float64) int {
	if multiplier <= 0 {
		multiplier = 1
	}
	v := decimal.NewFromInt(int64(base)).Mul(decimal.NewFromFloat(multiplier)).Round(0)
	return int(v.IntPart())
}
