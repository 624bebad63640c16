package service

import (
	"context"
	"fmt"

	"loteria/models"
)

type lotteryService struct {
	uowFactory UnitOfWorkFactory
}

// NewLotteryService creates a new lottery service
func NewLotteryService(uowFactory UnitOfWorkFactory) LotteryService {
	return &lotteryService{
		uowFactory: uowFactory,
	}
}

func (s *lotteryService) ListActive(ctx context.Context) ([]*models.Lottery, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	lotteries, err := uow.LotteryRepository().ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active lotteries: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return lotteries, nil
}
