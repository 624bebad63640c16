package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loteria/models"
)

type reportServiceMocks struct {
	factory     *MockUnitOfWorkFactory
	uow         *MockUnitOfWork
	lotteryRepo *MockLotteryRepository
	betRepo     *MockBetRepository
	drawRepo    *MockDrawResultRepository
	revenueRepo *MockDailyRevenueRepository
}

func newReportService(now time.Time) (*reportService, *reportServiceMocks) {
	m := &reportServiceMocks{
		factory:     new(MockUnitOfWorkFactory),
		uow:         new(MockUnitOfWork),
		lotteryRepo: new(MockLotteryRepository),
		betRepo:     new(MockBetRepository),
		drawRepo:    new(MockDrawResultRepository),
		revenueRepo: new(MockDailyRevenueRepository),
	}
	m.uow.SetRepositories(nil, m.lotteryRepo, m.betRepo, m.drawRepo, m.revenueRepo)

	svc := &reportService{
		uowFactory: m.factory,
		now:        func() time.Time { return now },
	}
	return svc, m
}

func TestReportService_Winners(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	lottery := &models.Lottery{
		ID:           1,
		Name:         models.LotteryLaSanta,
		PayoutFactor: decimal.RequireFromString("70.00"),
		DailyDraws:   3,
	}
	result := &models.DrawResult{
		ID: 10, LotteryID: 1, DrawDate: date, WinningNumber: 42, DrawSlot: 1, Active: true,
	}

	winningBet := &models.BetDetail{
		Bet: models.Bet{
			ID: 100, CustomerID: 5, LotteryID: 1, Number: 42,
			Stake: decimal.RequireFromString("10.00"), DrawSlot: 1, IsWinner: true,
		},
		Customer: models.Customer{
			ID: 5, Name: "Maria Lopez",
			BirthDate: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		Lottery: *lottery,
	}

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.drawRepo.On("GetActiveByDate", ctx, date).Return([]*models.DrawResult{result}, nil)
	m.lotteryRepo.On("GetByID", ctx, int64(1)).Return(lottery, nil)
	m.betRepo.On("FindWinning", ctx, result).Return([]*models.BetDetail{winningBet}, nil)

	rows, reportDate, err := svc.Winners(ctx, "2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, date, reportDate)
	require.Len(t, rows, 1)
	assert.Equal(t, "Maria Lopez", rows[0].Customer.Name)
	assert.Equal(t, 42, rows[0].WinningNumber)
	assert.True(t, rows[0].Prize.Equal(decimal.RequireFromString("700.00")))
}

func TestReportService_Winners_NoWinnerSentinel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	lottery := &models.Lottery{
		ID:           2,
		Name:         models.LotteryLaRifa,
		PayoutFactor: decimal.RequireFromString("80.00"),
		DailyDraws:   1,
	}
	result := &models.DrawResult{
		ID: 11, LotteryID: 2, DrawDate: date, WinningNumber: 7, DrawSlot: 1, Active: true,
	}

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.drawRepo.On("GetActiveByDate", ctx, date).Return([]*models.DrawResult{result}, nil)
	m.lotteryRepo.On("GetByID", ctx, int64(2)).Return(lottery, nil)
	m.betRepo.On("FindWinning", ctx, result).Return([]*models.BetDetail{}, nil)

	rows, _, err := svc.Winners(ctx, "2024-06-01")

	require.NoError(t, err)
	// Exactly one sentinel row: no customer, no bet, zero prize
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Customer)
	assert.Nil(t, rows[0].Bet)
	assert.True(t, rows[0].Prize.IsZero())
	assert.Equal(t, 7, rows[0].WinningNumber)
}

func TestReportService_Winners_BadDateFallsBackToToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
	svc, m := newReportService(now)

	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.drawRepo.On("GetActiveByDate", ctx, today).Return([]*models.DrawResult{}, nil)

	rows, reportDate, err := svc.Winners(ctx, "not-a-date")

	require.NoError(t, err)
	assert.Equal(t, today, reportDate)
	assert.Empty(t, rows)
}

func TestReportService_Revenue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)

	groups := []models.RevenueGroup{
		{LotteryID: 2, LotteryName: models.LotteryLaRifa, Total: decimal.RequireFromString("25.00"), Count: 2},
		{LotteryID: 1, LotteryName: models.LotteryLaSanta, Total: decimal.RequireFromString("40.00"), Count: 4},
	}

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.betRepo.On("SumByLottery", ctx, start, end, (*int64)(nil)).Return(groups, nil)

	report, err := svc.Revenue(ctx, "2024-01-01", "2024-01-07", nil)

	require.NoError(t, err)
	assert.Equal(t, start, report.Start)
	assert.Equal(t, end, report.End)
	require.Len(t, report.Groups, 2)
	assert.True(t, report.GrandTotal.Equal(decimal.RequireFromString("65.00")))
}

func TestReportService_Revenue_DefaultRangeOnBadDates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	defaultStart := time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)
	defaultEnd := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.betRepo.On("SumByLottery", ctx, defaultStart, defaultEnd, (*int64)(nil)).
		Return([]models.RevenueGroup{}, nil)

	report, err := svc.Revenue(ctx, "garbage", "", nil)

	require.NoError(t, err)
	assert.Equal(t, defaultStart, report.Start)
	assert.Equal(t, defaultEnd, report.End)
	assert.True(t, report.GrandTotal.IsZero())
}

func TestReportService_Dashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.betRepo.On("CountAndSumForDate", ctx, today).Return(&models.DashboardStats{
		BetsToday:      12,
		CollectedToday: decimal.RequireFromString("340.00"),
	}, nil)
	m.drawRepo.On("CountByDate", ctx, today).Return(int64(4), nil)

	stats, err := svc.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.BetsToday)
	assert.Equal(t, int64(4), stats.ResultsToday)
	assert.True(t, stats.CollectedToday.Equal(decimal.RequireFromString("340.00")))
}

func TestReportService_RefreshDailyRevenue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC)
	svc, m := newReportService(now)

	date := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	groups := []models.RevenueGroup{
		{LotteryID: 1, LotteryName: models.LotteryLaSanta, Total: decimal.RequireFromString("100.00"), Count: 10},
	}
	winners := []*models.BetDetail{
		{
			Bet: models.Bet{
				ID: 1, LotteryID: 1, Stake: decimal.RequireFromString("10.00"), IsWinner: true,
			},
			Customer: models.Customer{
				BirthDate: time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
			},
			Lottery: models.Lottery{
				ID: 1, PayoutFactor: decimal.RequireFromString("70.00"),
			},
		},
	}

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Commit").Return(nil)
	m.uow.On("Rollback").Return(nil)
	m.betRepo.On("SumByLottery", ctx, date, date, (*int64)(nil)).Return(groups, nil)
	m.betRepo.On("WinningForDate", ctx, date).Return(winners, nil)
	m.revenueRepo.On("Upsert", ctx, mock.MatchedBy(func(rev *models.DailyRevenue) bool {
		return rev.LotteryID == 1 &&
			rev.TotalCollected.Equal(decimal.RequireFromString("100.00")) &&
			rev.TotalPrizes.Equal(decimal.RequireFromString("700.00"))
	})).Return(nil)

	err := svc.RefreshDailyRevenue(ctx, "2024-06-01")

	require.NoError(t, err)
	m.revenueRepo.AssertExpectations(t)
}
