package models

import "time"

// DrawResult represents the officially registered winning number for
// one lottery, date and draw slot
type DrawResult struct {
	ID            int64     `db:"id" json:"id"`
	LotteryID     int64     `db:"lottery_id" json:"lottery_id"`
	DrawDate      time.Time `db:"draw_date" json:"draw_date"`
	WinningNumber int       `db:"winning_number" json:"winning_number"`
	DrawSlot      int       `db:"draw_slot" json:"draw_slot"`
	Active        bool      `db:"active" json:"active"`
}
