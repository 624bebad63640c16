package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"loteria/models"
)

type drawService struct {
	uowFactory UnitOfWorkFactory
}

// NewDrawService creates a new draw service
func NewDrawService(uowFactory UnitOfWorkFactory) DrawService {
	return &drawService{
		uowFactory: uowFactory,
	}
}

// RegisterResult stores the winning number for one lottery, date and slot
// and flags the matching bets as winners. The flagging is a single bulk
// update keyed on the result, so re-running it cannot double-flag.
func (s *drawService) RegisterResult(ctx context.Context, input DrawResultInput) (*models.DrawResult, int64, error) {
	result, verrs := input.Validate()
	if verrs != nil {
		return nil, 0, verrs
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	lottery, err := uow.LotteryRepository().GetByID(ctx, result.LotteryID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get lottery: %w", err)
	}
	if lottery == nil {
		return nil, 0, fmt.Errorf("lottery %d: %w", result.LotteryID, ErrNotFound)
	}

	if result.DrawSlot > lottery.DailyDraws {
		return nil, 0, ValidationErrors{{
			Field:   "draw_slot",
			Message: fmt.Sprintf("%s only has %d daily draws", lottery.Name.Display(), lottery.DailyDraws),
		}}
	}

	if err := uow.DrawResultRepository().Create(ctx, result); err != nil {
		return nil, 0, fmt.Errorf("failed to create draw result: %w", err)
	}

	flagged, err := uow.BetRepository().MarkWinners(ctx, result)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to mark winners: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"result_id":      result.ID,
		"lottery":        lottery.Name,
		"draw_date":      result.DrawDate.Format(dateLayout),
		"draw_slot":      result.DrawSlot,
		"winning_number": result.WinningNumber,
		"winners":        flagged,
	}).Info("Registered draw result")

	return result, flagged, nil
}

func (s *drawService) ListForDate(ctx context.Context, date time.Time) ([]*models.DrawResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	results, err := uow.DrawResultRepository().GetActiveByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list draw results: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return results, nil
}
