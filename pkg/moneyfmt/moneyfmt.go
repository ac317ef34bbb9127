// Package moneyfmt renders large monetary aggregates for human output.
package moneyfmt

import (
	"github.com/shopspring/decimal"
)

var (
	million = decimal.NewFromInt(1_000_000)
	billion = decimal.NewFromInt(1_000_000_000)
)

// Billions renders an amount in billions with one decimal, e.g. "12.5B".
func Billions(d decimal.Decimal) string {
	return d.Div(billion).StringFixed(1) + "B"
}

// Millions renders an amount in millions with one decimal, e.g. "340.0M".
func Millions(d decimal.Decimal) string {
	return d.Div(million).StringFixed(1) + "M"
}

// Auto picks the unit by magnitude: billions at or above one billion in
// absolute value, millions below.
func Auto(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(billion) {
		return Billions(d)
	}
	return Millions(d)
}
