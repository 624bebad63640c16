package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"loteria/models"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLotteryRepository is a mock implementation of LotteryRepository
type MockLotteryRepository struct {
	mock.Mock
}

func (m *MockLotteryRepository) GetByID(ctx context.Context, id int64) (*models.Lottery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lottery), args.Error(1)
}

func (m *MockLotteryRepository) ListActive(ctx context.Context) ([]*models.Lottery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lottery), args.Error(1)
}

// MockBetRepository is a mock implementation of BetRepository
type MockBetRepository struct {
	mock.Mock
}

func (m *MockBetRepository) Create(ctx context.Context, bet *models.Bet) error {
	args := m.Called(ctx, bet)
	return args.Error(0)
}

func (m *MockBetRepository) GetByID(ctx context.Context, id int64) (*models.Bet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bet), args.Error(1)
}

func (m *MockBetRepository) GetDetail(ctx context.Context, id int64) (*models.BetDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BetDetail), args.Error(1)
}

func (m *MockBetRepository) MarkWinners(ctx context.Context, result *models.DrawResult) (int64, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBetRepository) FindWinning(ctx context.Context, result *models.DrawResult) ([]*models.BetDetail, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BetDetail), args.Error(1)
}

func (m *MockBetRepository) WinningForDate(ctx context.Context, date time.Time) ([]*models.BetDetail, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BetDetail), args.Error(1)
}

func (m *MockBetRepository) SumByLottery(ctx context.Context, start, end time.Time, lotteryID *int64) ([]models.RevenueGroup, error) {
	args := m.Called(ctx, start, end, lotteryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RevenueGroup), args.Error(1)
}

func (m *MockBetRepository) CountAndSumForDate(ctx context.Context, date time.Time) (*models.DashboardStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockBetRepository) MarkPrizePaid(ctx context.Context, id int64, paidAt time.Time) error {
	args := m.Called(ctx, id, paidAt)
	return args.Error(0)
}

// MockDrawResultRepository is a mock implementation of DrawResultRepository
type MockDrawResultRepository struct {
	mock.Mock
}

func (m *MockDrawResultRepository) Create(ctx context.Context, result *models.DrawResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockDrawResultRepository) GetActiveByDate(ctx context.Context, date time.Time) ([]*models.DrawResult, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DrawResult), args.Error(1)
}

func (m *MockDrawResultRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

// MockDailyRevenueRepository is a mock implementation of DailyRevenueRepository
type MockDailyRevenueRepository struct {
	mock.Mock
}

func (m *MockDailyRevenueRepository) Upsert(ctx context.Context, revenue *models.DailyRevenue) error {
	args := m.Called(ctx, revenue)
	return args.Error(0)
}

func (m *MockDailyRevenueRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.DailyRevenue, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DailyRevenue), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	customerRepo     CustomerRepository
	lotteryRepo      LotteryRepository
	betRepo          BetRepository
	drawResultRepo   DrawResultRepository
	dailyRevenueRepo DailyRevenueRepository
}

// SetRepositories configures the repositories returned by the accessors
func (m *MockUnitOfWork) SetRepositories(
	customerRepo CustomerRepository,
	lotteryRepo LotteryRepository,
	betRepo BetRepository,
	drawResultRepo DrawResultRepository,
	dailyRevenueRepo DailyRevenueRepository,
) {
	m.customerRepo = customerRepo
	m.lotteryRepo = lotteryRepo
	m.betRepo = betRepo
	m.drawResultRepo = drawResultRepo
	m.dailyRevenueRepo = dailyRevenueRepo
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) CustomerRepository() CustomerRepository {
	return m.customerRepo
}

func (m *MockUnitOfWork) LotteryRepository() LotteryRepository {
	return m.lotteryRepo
}

func (m *MockUnitOfWork) BetRepository() BetRepository {
	return m.betRepo
}

func (m *MockUnitOfWork) DrawResultRepository() DrawResultRepository {
	return m.drawResultRepo
}

func (m *MockUnitOfWork) DailyRevenueRepository() DailyRevenueRepository {
	return m.dailyRevenueRepo
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
