package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"loteria/models"
)

type reportService struct {
	uowFactory UnitOfWorkFactory
	now        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(uowFactory UnitOfWorkFactory) ReportService {
	return &reportService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (s *reportService) Winners(ctx context.Context, dateStr string) ([]models.WinnerRow, time.Time, error) {
	date := ParseDateOr(dateStr, s.now())

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, date, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	results, err := uow.DrawResultRepository().GetActiveByDate(ctx, date)
	if err != nil {
		return nil, date, fmt.Errorf("failed to get draw results: %w", err)
	}

	rows := make([]models.WinnerRow, 0, len(results))
	for _, result := range results {
		lottery, err := uow.LotteryRepository().GetByID(ctx, result.LotteryID)
		if err != nil {
			return nil, date, fmt.Errorf("failed to get lottery: %w", err)
		}
		if lottery == nil {
			return nil, date, fmt.Errorf("lottery %d: %w", result.LotteryID, ErrNotFound)
		}

		matches, err := uow.BetRepository().FindWinning(ctx, result)
		if err != nil {
			return nil, date, fmt.Errorf("failed to find winning bets: %w", err)
		}

		if len(matches) == 0 {
			// No winner for this result
			rows = append(rows, models.WinnerRow{
				Lottery:       *lottery,
				DrawSlot:      result.DrawSlot,
				WinningNumber: result.WinningNumber,
				Prize:         decimal.Zero,
			})
			continue
		}

		for _, match := range matches {
			bet := match.Bet
			customer := match.Customer
			rows = append(rows, models.WinnerRow{
				Lottery:       *lottery,
				DrawSlot:      result.DrawSlot,
				WinningNumber: result.WinningNumber,
				Customer:      &customer,
				Prize:         CalculatePrize(bet.Stake, lottery.PayoutFactor, customer.BirthDate, s.now()),
				Bet:           &bet,
			})
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, date, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return rows, date, nil
}

func (s *reportService) Revenue(ctx context.Context, startStr, endStr string, lotteryID *int64) (*models.RevenueReport, error) {
	now := s.now()
	start := ParseDateOr(startStr, now.AddDate(0, 0, -7))
	end := ParseDateOr(endStr, now)

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	groups, err := uow.BetRepository().SumByLottery(ctx, start, end, lotteryID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	grandTotal := decimal.Zero
	for _, group := range groups {
		grandTotal = grandTotal.Add(group.Total)
	}

	return &models.RevenueReport{
		Start:      start,
		End:        end,
		Groups:     groups,
		GrandTotal: grandTotal,
	}, nil
}

func (s *reportService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	today := DateOnly(s.now())

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	stats, err := uow.BetRepository().CountAndSumForDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet stats: %w", err)
	}

	resultCount, err := uow.DrawResultRepository().CountByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count draw results: %w", err)
	}
	stats.ResultsToday = resultCount

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stats, nil
}

// RefreshDailyRevenue rebuilds the per-lottery summary rows for one day.
// Collected totals come straight from the bets; prize totals are the
// computed prizes of that day's winning bets.
func (s *reportService) RefreshDailyRevenue(ctx context.Context, dateStr string) error {
	date := ParseDateOr(dateStr, s.now())

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	groups, err := uow.BetRepository().SumByLottery(ctx, date, date, nil)
	if err != nil {
		return fmt.Errorf("failed to aggregate stakes: %w", err)
	}

	winners, err := uow.BetRepository().WinningForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get winning bets: %w", err)
	}

	prizesByLottery := make(map[int64]decimal.Decimal)
	for _, winner := range winners {
		prize := CalculatePrize(winner.Stake, winner.Lottery.PayoutFactor, winner.Customer.BirthDate, s.now())
		prizesByLottery[winner.LotteryID] = prizesByLottery[winner.LotteryID].Add(prize)
	}

	for _, group := range groups {
		revenue := &models.DailyRevenue{
			Date:           date,
			LotteryID:      group.LotteryID,
			TotalCollected: group.Total,
			TotalPrizes:    prizesByLottery[group.LotteryID],
		}
		if err := uow.DailyRevenueRepository().Upsert(ctx, revenue); err != nil {
			return fmt.Errorf("failed to upsert daily revenue: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"date":      date.Format(dateLayout),
		"lotteries": len(groups),
	}).Info("Refreshed daily revenue")

	return nil
}
