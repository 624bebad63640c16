package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"loteria/models"
)

// CreateTestCustomer creates a test customer with default values
func CreateTestCustomer(name string) *models.Customer {
	return &models.Customer{
		Name:      name,
		Phone:     "555-0101",
		Address:   "Calle 10 #4-23",
		BirthDate: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

// CreateTestCustomerWithBirthDate creates a test customer with a specific birth date
func CreateTestCustomerWithBirthDate(name string, birthDate time.Time) *models.Customer {
	customer := CreateTestCustomer(name)
	customer.BirthDate = birthDate
	return customer
}

// CreateTestBet creates a test bet with default values
func CreateTestBet(customerID, lotteryID int64, number int) *models.Bet {
	return &models.Bet{
		CustomerID: customerID,
		LotteryID:  lotteryID,
		Number:     number,
		Stake:      decimal.RequireFromString("10.00"),
		SoldBy:     1,
		DrawSlot:   1,
	}
}

// CreateTestBetWithStake creates a test bet with a specific stake
func CreateTestBetWithStake(customerID, lotteryID int64, number int, stake string) *models.Bet {
	bet := CreateTestBet(customerID, lotteryID, number)
	bet.Stake = decimal.RequireFromString(stake)
	return bet
}

// CreateTestDrawResult creates a test draw result with default values
func CreateTestDrawResult(lotteryID int64, date time.Time, winningNumber int) *models.DrawResult {
	return &models.DrawResult{
		LotteryID:     lotteryID,
		DrawDate:      date,
		WinningNumber: winningNumber,
		DrawSlot:      1,
		Active:        true,
	}
}
