package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerInput_Validate(t *testing.T) {
	customer, errs := CustomerInput{
		Name:      "Maria Lopez",
		Phone:     "555-0101",
		Address:   "Calle 10 #4-23",
		BirthDate: "1990-03-15",
	}.Validate()

	require.Nil(t, errs)
	assert.Equal(t, "Maria Lopez", customer.Name)
	assert.Equal(t, 1990, customer.BirthDate.Year())
}

func TestCustomerInput_Validate_BadDate(t *testing.T) {
	_, errs := CustomerInput{
		Name:      "Maria Lopez",
		Phone:     "555-0101",
		BirthDate: "not-a-date",
	}.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "birth_date", errs[0].Field)
}

func TestCustomerInput_Validate_MissingFields(t *testing.T) {
	_, errs := CustomerInput{BirthDate: "1990-03-15"}.Validate()

	require.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "phone")
}

func TestBetInput_Validate(t *testing.T) {
	bet, errs := BetInput{
		CustomerID: 1,
		LotteryID:  2,
		Number:     42,
		Stake:      "10.50",
		DrawSlot:   1,
	}.Validate()

	require.Nil(t, errs)
	assert.Equal(t, 42, bet.Number)
	assert.True(t, bet.Stake.Equal(decimal.RequireFromString("10.50")))
}

func TestBetInput_Validate_NumberOutOfRange(t *testing.T) {
	for _, number := range []int{-1, 100, 250} {
		_, errs := BetInput{
			CustomerID: 1,
			LotteryID:  1,
			Number:     number,
			Stake:      "5.00",
			DrawSlot:   1,
		}.Validate()

		require.Len(t, errs, 1, "number %d should be rejected", number)
		assert.Equal(t, "number", errs[0].Field)
	}
}

func TestBetInput_Validate_BadStake(t *testing.T) {
	_, errs := BetInput{
		CustomerID: 1,
		LotteryID:  1,
		Number:     7,
		Stake:      "abc",
		DrawSlot:   1,
	}.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "stake", errs[0].Field)

	_, errs = BetInput{
		CustomerID: 1,
		LotteryID:  1,
		Number:     7,
		Stake:      "-5.00",
		DrawSlot:   1,
	}.Validate()

	require.Len(t, errs, 1)
	assert.Equal(t, "stake", errs[0].Field)
}

func TestBetInput_Validate_ZeroStakeAllowed(t *testing.T) {
	bet, errs := BetInput{
		CustomerID: 1,
		LotteryID:  1,
		Number:     7,
		Stake:      "0",
		DrawSlot:   1,
	}.Validate()

	require.Nil(t, errs)
	assert.True(t, bet.Stake.IsZero())
}

func TestDrawResultInput_Validate(t *testing.T) {
	result, errs := DrawResultInput{
		LotteryID:     1,
		Date:          "2024-06-01",
		WinningNumber: 42,
		DrawSlot:      2,
	}.Validate()

	require.Nil(t, errs)
	assert.True(t, result.Active)
	assert.Equal(t, 42, result.WinningNumber)
}

func TestDrawResultInput_Validate_Invalid(t *testing.T) {
	_, errs := DrawResultInput{
		LotteryID:     0,
		Date:          "01/06/2024",
		WinningNumber: 105,
		DrawSlot:      0,
	}.Validate()

	require.Len(t, errs, 4)
}
