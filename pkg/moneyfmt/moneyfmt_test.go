package moneyfmt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBillions(t *testing.T) {
	assert.Equal(t, "12.5B", Billions(decimal.NewFromInt(12_500_000_000)))
	assert.Equal(t, "-3.0B", Billions(decimal.NewFromInt(-3_000_000_000)))
	assert.Equal(t, "0.0B", Billions(decimal.Zero))
}

func TestMillions(t *testing.T) {
	assert.Equal(t, "340.0M", Millions(decimal.NewFromInt(340_000_000)))
	assert.Equal(t, "0.5M", Millions(decimal.NewFromInt(500_000)))
}

func TestAuto(t *testing.T) {
	assert.Equal(t, "1.0B", Auto(decimal.NewFromInt(1_000_000_000)))
	assert.Equal(t, "999.9M", Auto(decimal.NewFromInt(999_900_000)))
	assert.Equal(t, "-2.4B", Auto(decimal.NewFromInt(-2_400_000_000)))
}
