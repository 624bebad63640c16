package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loteria/models"
)

// FieldError describes a validation failure on a single input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects the field errors for one input
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const dateLayout = "2006-01-02"

// CustomerInput holds the raw form values for registering a customer
type CustomerInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date"`
}

// Validate checks the input and returns a customer ready for persistence
func (in CustomerInput) Validate() (*models.Customer, ValidationErrors) {
	var errs ValidationErrors

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	}

	birthDate, err := time.Parse(dateLayout, in.BirthDate)
	if err != nil {
		errs = append(errs, FieldError{Field: "birth_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Customer{
		Name:      strings.TrimSpace(in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   in.Address,
		BirthDate: birthDate,
	}, nil
}

// BetInput holds the raw form values for placing a bet
type BetInput struct {
	CustomerID int64  `json:"customer_id"`
	LotteryID  int64  `json:"lottery_id"`
	Number     int    `json:"number"`
	Stake      string `json:"stake"`
	DrawSlot   int    `json:"draw_slot"`
}

// Validate checks the field constraints that do not require lookups.
// Foreign keys and the slot-vs-lottery bound are checked by the sale service.
func (in BetInput) Validate() (*models.Bet, ValidationErrors) {
	var errs ValidationErrors

	if in.CustomerID <= 0 {
		errs = append(errs, FieldError{Field: "customer_id", Message: "customer is required"})
	}
	if in.LotteryID <= 0 {
		errs = append(errs, FieldError{Field: "lottery_id", Message: "lottery is required"})
	}
	if in.Number < 0 || in.Number > 99 {
		errs = append(errs, FieldError{Field: "number", Message: "number must be between 0 and 99"})
	}
	if in.DrawSlot < 1 {
		errs = append(errs, FieldError{Field: "draw_slot", Message: "draw slot must be at least 1"})
	}

	stake, err := decimal.NewFromString(in.Stake)
	if err != nil {
		errs = append(errs, FieldError{Field: "stake", Message: "stake must be a valid decimal amount"})
	} else if stake.IsNegative() {
		errs = append(errs, FieldError{Field: "stake", Message: "stake must not be negative"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Bet{
		CustomerID: in.CustomerID,
		LotteryID:  in.LotteryID,
		Number:     in.Number,
		Stake:      stake,
		DrawSlot:   in.DrawSlot,
	}, nil
}

// DrawResultInput holds the raw form values for registering a draw result
type DrawResultInput struct {
	LotteryID     int64  `json:"lottery_id"`
	Date          string `json:"date"`
	WinningNumber int    `json:"winning_number"`
	DrawSlot      int    `json:"draw_slot"`
}

// Validate checks the field constraints that do not require lookups
func (in DrawResultInput) Validate() (*models.DrawResult, ValidationErrors) {
	var errs ValidationErrors

	if in.LotteryID <= 0 {
		errs = append(errs, FieldError{Field: "lottery_id", Message: "lottery is required"})
	}
	if in.WinningNumber < 0 || in.WinningNumber > 99 {
		errs = append(errs, FieldError{Field: "winning_number", Message: "winning number must be between 0 and 99"})
	}
	if in.DrawSlot < 1 {
		errs = append(errs, FieldError{Field: "draw_slot", Message: "draw slot must be at least 1"})
	}

	drawDate, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.DrawResult{
		LotteryID:     in.LotteryID,
		DrawDate:      drawDate,
		WinningNumber: in.WinningNumber,
		DrawSlot:      in.DrawSlot,
		Active:        true,
	}, nil
}
