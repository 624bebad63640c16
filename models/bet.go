package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bet represents a customer's wager on a number for one of a lottery's
// daily draw slots
type Bet struct {
	ID          int64           `db:"id" json:"id"`
	CustomerID  int64           `db:"customer_id" json:"customer_id"`
	LotteryID   int64           `db:"lottery_id" json:"lottery_id"`
	Number      int             `db:"number" json:"number"`
	Stake       decimal.Decimal `db:"stake" json:"stake"`
	SoldAt      time.Time       `db:"sold_at" json:"sold_at"`
	SoldBy      int64           `db:"sold_by" json:"sold_by"`
	DrawSlot    int             `db:"draw_slot" json:"draw_slot"`
	IsWinner    bool            `db:"is_winner" json:"is_winner"`
	PrizePaid   bool            `db:"prize_paid" json:"prize_paid"`
	PrizePaidAt *time.Time      `db:"prize_paid_at" json:"prize_paid_at,omitempty"`
}

// BetDetail is a bet with its customer and lottery resolved,
// as rendered on vouchers and winner reports
type BetDetail struct {
	Bet
	Customer Customer `json:"customer"`
	Lottery  Lottery  `json:"lottery"`
}
