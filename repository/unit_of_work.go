package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"loteria/database"
	"loteria/service"
)

// unitOfWork implements the service.UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	customerRepo     service.CustomerRepository
	lotteryRepo      service.LotteryRepository
	betRepo          service.BetRepository
	drawResultRepo   service.DrawResultRepository
	dailyRevenueRepo service.DailyRevenueRepository
}

type unitOfWorkFactory struct {
	db *database.DB
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{db: f.db}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create repositories with the transaction
	u.customerRepo = newCustomerRepositoryWithTx(tx)
	u.lotteryRepo = newLotteryRepositoryWithTx(tx)
	u.betRepo = newBetRepositoryWithTx(tx)
	u.drawResultRepo = newDrawResultRepositoryWithTx(tx)
	u.dailyRevenueRepo = newDailyRevenueRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil
	return nil
}

// CustomerRepository returns the customer repository for this unit of work
func (u *unitOfWork) CustomerRepository() service.CustomerRepository {
	if u.customerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.customerRepo
}

// LotteryRepository returns the lottery repository for this unit of work
func (u *unitOfWork) LotteryRepository() service.LotteryRepository {
	if u.lotteryRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.lotteryRepo
}

// BetRepository returns the bet repository for this unit of work
func (u *unitOfWork) BetRepository() service.BetRepository {
	if u.betRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.betRepo
}

// DrawResultRepository returns the draw result repository for this unit of work
func (u *unitOfWork) DrawResultRepository() service.DrawResultRepository {
	if u.drawResultRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.drawResultRepo
}

// DailyRevenueRepository returns the daily revenue repository for this unit of work
func (u *unitOfWork) DailyRevenueRepository() service.DailyRevenueRepository {
	if u.dailyRevenueRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.dailyRevenueRepo
}
