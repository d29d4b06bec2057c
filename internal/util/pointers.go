package util

import "github.com/shopspring/decimal"

func StringPointer(s string) *string {
	return &s
}

func FloatPointer(f float64) *float64 {
	return &f
}

func IntPointer(i int64) *int64 {
	return &i
}

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}
