package api

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 5.0, SafeDiv(10, 2))
	assert.Equal(t, 0.0, SafeDiv(10, 0))
	assert.Equal(t, 0.0, SafeDiv(10, "x"))
	assert.Equal(t, 0.0, SafeDiv(nil, 2))
	assert.Equal(t, 2.5, SafeDiv("5", "2"))
}

func TestSafeMul(t *testing.T) {
	assert.Equal(t, 6.0, SafeMul(3, 2))
	assert.Equal(t, 0.0, SafeMul(3, "x"))
	assert.Equal(t, 0.0, SafeMul(nil, nil))
	assert.Equal(t, 21.0, SafeMul(decimal.RequireFromString("10.5"), 2))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 25.0, Percentage(25, 100))
	assert.Equal(t, 0.0, Percentage(50, 0))
	assert.Equal(t, 0.0, Percentage("x", 100))
	assert.Equal(t, 50.0, Percentage(decimal.RequireFromString("1.0"), 2))
}
