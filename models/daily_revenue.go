package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenue is the per-day, per-lottery revenue summary. It is derived
// from bet records and can always be recomputed from them.
type DailyRevenue struct {
	ID             int64           `db:"id" json:"id"`
	Date           time.Time       `db:"revenue_date" json:"date"`
	LotteryID      int64           `db:"lottery_id" json:"lottery_id"`
	TotalCollected decimal.Decimal `db:"total_collected" json:"total_collected"`
	TotalPrizes    decimal.Decimal `db:"total_prizes" json:"total_prizes"`
}
