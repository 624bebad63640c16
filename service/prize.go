package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrizeClaimDays is the default claim window after the sale
const PrizeClaimDays = 5

// birthdayBonus is the multiplier applied when the customer's birthday
// falls on the day the prize is calculated
var birthdayBonus = decimal.RequireFromString("1.10")

// CalculatePrize computes the payout for a winning bet: stake times the
// lottery's payout factor, with a 10% bonus when the customer's birth
// month and day match "now". The bonus is evaluated against the
// calculation date, not the sale date.
func CalculatePrize(stake, payoutFactor decimal.Decimal, birthDate, now time.Time) decimal.Decimal {
	prize := stake.Mul(payoutFactor)

	if birthDate.Month() == now.Month() && birthDate.Day() == now.Day() {
		prize = prize.Mul(birthdayBonus)
	}

	return prize
}

// CanClaimPrize reports whether the prize is still claimable: the claim
// window runs for claimDays after the sale, deadline inclusive
func CanClaimPrize(soldAt, now time.Time, claimDays int) bool {
	deadline := soldAt.AddDate(0, 0, claimDays)
	return !now.After(deadline)
}
