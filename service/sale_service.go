package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"loteria/models"
)

// ErrNotFound marks lookups of missing customers, lotteries or bets
var ErrNotFound = errors.New("not found")

// ErrClaimExpired marks prize payments attempted after the claim window
var ErrClaimExpired = errors.New("prize claim window has expired")

type saleService struct {
	uowFactory UnitOfWorkFactory
	claimDays  int
	now        func() time.Time
}

// NewSaleService creates a new sale service. claimDays bounds how long
// after the sale a prize can still be paid; zero or negative falls back
// to PrizeClaimDays.
func NewSaleService(uowFactory UnitOfWorkFactory, claimDays int) SaleService {
	if claimDays <= 0 {
		claimDays = PrizeClaimDays
	}
	return &saleService{
		uowFactory: uowFactory,
		claimDays:  claimDays,
		now:        time.Now,
	}
}

func (s *saleService) PlaceBet(ctx context.Context, soldBy int64, input BetInput) (*models.Bet, error) {
	bet, verrs := input.Validate()
	if verrs != nil {
		return nil, verrs
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	customer, err := uow.CustomerRepository().GetByID(ctx, bet.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d: %w", bet.CustomerID, ErrNotFound)
	}

	lottery, err := uow.LotteryRepository().GetByID(ctx, bet.LotteryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lottery: %w", err)
	}
	if lottery == nil {
		return nil, fmt.Errorf("lottery %d: %w", bet.LotteryID, ErrNotFound)
	}

	if bet.DrawSlot > lottery.DailyDraws {
		return nil, ValidationErrors{{
			Field:   "draw_slot",
			Message: fmt.Sprintf("%s only has %d daily draws", lottery.Name.Display(), lottery.DailyDraws),
		}}
	}

	bet.SoldBy = soldBy
	if err := uow.BetRepository().Create(ctx, bet); err != nil {
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"bet_id":    bet.ID,
		"lottery":   lottery.Name,
		"number":    bet.Number,
		"stake":     bet.Stake.String(),
		"draw_slot": bet.DrawSlot,
		"sold_by":   soldBy,
	}).Info("Placed bet")

	return bet, nil
}

func (s *saleService) GetVoucher(ctx context.Context, betID int64) (*models.BetDetail, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	detail, err := uow.BetRepository().GetDetail(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("bet %d: %w", betID, ErrNotFound)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return detail, nil
}

func (s *saleService) PayPrize(ctx context.Context, betID int64) (*models.Bet, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	bet, err := uow.BetRepository().GetByID(ctx, betID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	if bet == nil {
		return nil, fmt.Errorf("bet %d: %w", betID, ErrNotFound)
	}

	if !bet.IsWinner {
		return nil, fmt.Errorf("bet %d is not a winner", betID)
	}
	if bet.PrizePaid {
		return nil, fmt.Errorf("prize for bet %d has already been paid", betID)
	}

	now := s.now()
	if !CanClaimPrize(bet.SoldAt, now, s.claimDays) {
		return nil, ErrClaimExpired
	}

	if err := uow.BetRepository().MarkPrizePaid(ctx, betID, now); err != nil {
		return nil, fmt.Errorf("failed to mark prize paid: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	bet.PrizePaid = true
	bet.PrizePaidAt = &now

	log.WithField("bet_id", betID).Info("Prize paid")

	return bet, nil
}
