package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WinnerRow is one line of the winners report. When no bet matched the
// draw result, Customer and Bet are nil and Prize is zero.
type WinnerRow struct {
	Lottery       Lottery         `json:"lottery"`
	DrawSlot      int             `json:"draw_slot"`
	WinningNumber int             `json:"winning_number"`
	Customer      *Customer       `json:"customer,omitempty"`
	Prize         decimal.Decimal `json:"prize"`
	Bet           *Bet            `json:"bet,omitempty"`
}

// RevenueGroup is the revenue report aggregate for one lottery
type RevenueGroup struct {
	LotteryID   int64           `json:"lottery_id"`
	LotteryName LotteryName     `json:"lottery_name"`
	Total       decimal.Decimal `json:"total"`
	Count       int64           `json:"count"`
}

// RevenueReport summarizes collected stakes over an inclusive date range
type RevenueReport struct {
	Start      time.Time       `json:"start"`
	End        time.Time       `json:"end"`
	Groups     []RevenueGroup  `json:"groups"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// DashboardStats holds today's headline numbers
type DashboardStats struct {
	BetsToday      int64           `json:"bets_today"`
	CollectedToday decimal.Decimal `json:"collected_today"`
	ResultsToday   int64           `json:"results_today"`
}
