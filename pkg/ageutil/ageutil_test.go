package ageutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3))
	assert.Equal(t, 0, Clamp(0))
	assert.Equal(t, 42, Clamp(42))
	assert.Equal(t, 100, Clamp(100))
	assert.Equal(t, 100, Clamp(117))
}

func TestClassification(t *testing.T) {
	tests := []struct {
		age           int
		retirementAge int
		child         bool
		working       bool
		retired       bool
	}{
		{0, 66, true, false, false},
		{14, 66, true, false, false},
		{15, 66, false, true, false},
		{65, 66, false, true, false},
		{66, 66, false, false, true},
		{100, 66, false, false, true},
		{60, 60, false, false, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.child, IsChild(tt.age), "IsChild(%d)", tt.age)
		assert.Equal(t, tt.working, IsWorkingAge(tt.age, tt.retirementAge), "IsWorkingAge(%d, %d)", tt.age, tt.retirementAge)
		assert.Equal(t, tt.retired, IsRetired(tt.age, tt.retirementAge), "IsRetired(%d, %d)", tt.age, tt.retirementAge)
	}
}

func TestIsFertile(t *testing.T) {
	assert.False(t, IsFertile(14))
	assert.True(t, IsFertile(15))
	assert.True(t, IsFertile(49))
	assert.False(t, IsFertile(50))
}

func TestBandLabel(t *testing.T) {
	assert.Equal(t, "0-14", BandLabel(0, 14))
	assert.Equal(t, "85+", BandLabel(85, 100))
}
