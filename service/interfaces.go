package service

import (
	"context"
	"time"

	"loteria/models"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	// Create persists a new customer and fills in its ID and registration time
	Create(ctx context.Context, customer *models.Customer) error

	// GetByID retrieves a customer by ID, returning nil when not found
	GetByID(ctx context.Context, id int64) (*models.Customer, error)

	// List returns all customers ordered by registration time, newest first
	List(ctx context.Context) ([]*models.Customer, error)

	// Delete removes a customer; dependent bets are removed by the store
	Delete(ctx context.Context, id int64) error
}

// LotteryRepository defines the interface for lottery product data access
type LotteryRepository interface {
	// GetByID retrieves a lottery by ID, returning nil when not found
	GetByID(ctx context.Context, id int64) (*models.Lottery, error)

	// ListActive returns all active lottery products
	ListActive(ctx context.Context) ([]*models.Lottery, error)
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create persists a new bet and fills in its ID and sale time
	Create(ctx context.Context, bet *models.Bet) error

	// GetByID retrieves a bet by ID, returning nil when not found
	GetByID(ctx context.Context, id int64) (*models.Bet, error)

	// GetDetail retrieves a bet with its customer and lottery resolved
	GetDetail(ctx context.Context, id int64) (*models.BetDetail, error)

	// MarkWinners flags every bet matching the draw result's lottery,
	// slot and winning number whose sale date equals the result's date.
	// Returns the number of rows the update touched.
	MarkWinners(ctx context.Context, result *models.DrawResult) (int64, error)

	// FindWinning returns the bets matching a draw result, with customer
	// and lottery resolved
	FindWinning(ctx context.Context, result *models.DrawResult) ([]*models.BetDetail, error)

	// WinningForDate returns all winning bets sold on the given date
	WinningForDate(ctx context.Context, date time.Time) ([]*models.BetDetail, error)

	// SumByLottery aggregates stakes per lottery over an inclusive sale-date
	// range, optionally filtered to a single lottery
	SumByLottery(ctx context.Context, start, end time.Time, lotteryID *int64) ([]models.RevenueGroup, error)

	// CountAndSumForDate returns the bet count and collected total for one day
	CountAndSumForDate(ctx context.Context, date time.Time) (*models.DashboardStats, error)

	// MarkPrizePaid sets the prize-paid flag and timestamp on a winning bet
	MarkPrizePaid(ctx context.Context, id int64, paidAt time.Time) error
}

// DrawResultRepository defines the interface for draw result data access
type DrawResultRepository interface {
	// Create persists a new draw result and fills in its ID
	Create(ctx context.Context, result *models.DrawResult) error

	// GetActiveByDate returns all active results for a date
	GetActiveByDate(ctx context.Context, date time.Time) ([]*models.DrawResult, error)

	// CountByDate returns how many results were registered for a date
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}

// DailyRevenueRepository defines the interface for the derived revenue summary
type DailyRevenueRepository interface {
	// Upsert inserts or replaces the summary row for (date, lottery)
	Upsert(ctx context.Context, revenue *models.DailyRevenue) error

	// GetByDate returns all summary rows for a date
	GetByDate(ctx context.Context, date time.Time) ([]*models.DailyRevenue, error)
}

// UnitOfWork provides transactional access to repositories
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() CustomerRepository
	LotteryRepository() LotteryRepository
	BetRepository() BetRepository
	DrawResultRepository() DrawResultRepository
	DailyRevenueRepository() DailyRevenueRepository
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// CustomerService defines the interface for customer operations
type CustomerService interface {
	// RegisterCustomer validates and persists a new customer
	RegisterCustomer(ctx context.Context, input CustomerInput) (*models.Customer, error)

	// ListCustomers returns all customers, newest registrations first
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
}

// LotteryService defines the interface for lottery product operations
type LotteryService interface {
	// ListActive returns the lottery products currently on sale
	ListActive(ctx context.Context) ([]*models.Lottery, error)
}

// SaleService defines the interface for bet sales
type SaleService interface {
	// PlaceBet validates and persists a bet sold by the acting staff user
	PlaceBet(ctx context.Context, soldBy int64, input BetInput) (*models.Bet, error)

	// GetVoucher returns the bet with customer and lottery resolved,
	// for the receipt view
	GetVoucher(ctx context.Context, betID int64) (*models.BetDetail, error)

	// PayPrize marks a winning bet's prize as disbursed, provided the
	// claim window has not expired
	PayPrize(ctx context.Context, betID int64) (*models.Bet, error)
}

// DrawService defines the interface for draw result registration
type DrawService interface {
	// RegisterResult validates and persists a draw result and flags the
	// matching winning bets in the same transaction. Returns the result
	// and the number of bets flagged.
	RegisterResult(ctx context.Context, input DrawResultInput) (*models.DrawResult, int64, error)

	// ListForDate returns the active results registered for a date
	ListForDate(ctx context.Context, date time.Time) ([]*models.DrawResult, error)
}

// ReportService defines the interface for reporting operations
type ReportService interface {
	// Winners builds the winners report for a date given as YYYY-MM-DD.
	// A malformed date silently falls back to today.
	Winners(ctx context.Context, dateStr string) ([]models.WinnerRow, time.Time, error)

	// Revenue builds the revenue report for an inclusive date range given
	// as YYYY-MM-DD strings, optionally filtered by lottery. Malformed
	// dates silently fall back to the last seven days.
	Revenue(ctx context.Context, startStr, endStr string, lotteryID *int64) (*models.RevenueReport, error)

	// Dashboard returns today's headline numbers
	Dashboard(ctx context.Context) (*models.DashboardStats, error)

	// RefreshDailyRevenue recomputes the per-lottery revenue summary for a
	// date from the bet records and upserts it
	RefreshDailyRevenue(ctx context.Context, dateStr string) error
}
