package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"loteria/database"
	"loteria/models"
)

// LotteryRepository implements lottery product data access
type LotteryRepository struct {
	q Queryable
}

// NewLotteryRepository creates a new lottery repository
func NewLotteryRepository(db *database.DB) *LotteryRepository {
	return &LotteryRepository{q: db.Pool}
}

// newLotteryRepositoryWithTx creates a new lottery repository with a transaction
func newLotteryRepositoryWithTx(tx Queryable) *LotteryRepository {
	return &LotteryRepository{q: tx}
}

// GetByID retrieves a lottery by ID
func (r *LotteryRepository) GetByID(ctx context.Context, id int64) (*models.Lottery, error) {
	query := `
		SELECT id, name, payout_factor, daily_draws, active
		FROM lotteries
		WHERE id = $1
	`

	var lottery models.Lottery
	err := r.q.QueryRow(ctx, query, id).Scan(
		&lottery.ID,
		&lottery.Name,
		&lottery.PayoutFactor,
		&lottery.DailyDraws,
		&lottery.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lottery by ID %d: %w", id, err)
	}

	return &lottery, nil
}

// ListActive returns all active lottery products
func (r *LotteryRepository) ListActive(ctx context.Context) ([]*models.Lottery, error) {
	query := `
		SELECT id, name, payout_factor, daily_draws, active
		FROM lotteries
		WHERE active
		ORDER BY name
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active lotteries: %w", err)
	}
	defer rows.Close()

	var lotteries []*models.Lottery
	for rows.Next() {
		var lottery models.Lottery
		err := rows.Scan(
			&lottery.ID,
			&lottery.Name,
			&lottery.PayoutFactor,
			&lottery.DailyDraws,
			&lottery.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lottery: %w", err)
		}
		lotteries = append(lotteries, &lottery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lotteries: %w", err)
	}

	return lotteries, nil
}
