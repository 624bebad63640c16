package models

import "github.com/shopspring/decimal"

// LotteryName identifies one of the shop's fixed lottery products
type LotteryName string

const (
	LotteryLaSanta  LotteryName = "la_santa"
	LotteryLaRifa   LotteryName = "la_rifa"
	LotteryElSorteo LotteryName = "el_sorteo"
)

// Display returns the customer-facing name of the lottery
func (n LotteryName) Display() string {
	switch n {
	case LotteryLaSanta:
		return "La Santa"
	case LotteryLaRifa:
		return "La Rifa"
	case LotteryElSorteo:
		return "El Sorteo"
	}
	return string(n)
}

// Lottery represents a lottery product with its payout factor and
// number of daily draws
type Lottery struct {
	ID           int64           `db:"id" json:"id"`
	Name         LotteryName     `db:"name" json:"name"`
	PayoutFactor decimal.Decimal `db:"payout_factor" json:"payout_factor"`
	DailyDraws   int             `db:"daily_draws" json:"daily_draws"`
	Active       bool            `db:"active" json:"active"`
}
