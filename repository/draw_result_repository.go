package repository

import (
	"context"
	"fmt"
	"time"

	"loteria/database"
	"loteria/models"
)

// DrawResultRepository implements draw result data access
type DrawResultRepository struct {
	q Queryable
}

// NewDrawResultRepository creates a new draw result repository
func NewDrawResultRepository(db *database.DB) *DrawResultRepository {
	return &DrawResultRepository{q: db.Pool}
}

// newDrawResultRepositoryWithTx creates a new draw result repository with a transaction
func newDrawResultRepositoryWithTx(tx Queryable) *DrawResultRepository {
	return &DrawResultRepository{q: tx}
}

// Create persists a new draw result. The store enforces at most one
// active result per (lottery, date, slot).
func (r *DrawResultRepository) Create(ctx context.Context, result *models.DrawResult) error {
	query := `
		INSERT INTO draw_results (lottery_id, draw_date, winning_number, draw_slot, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		result.LotteryID,
		result.DrawDate,
		result.WinningNumber,
		result.DrawSlot,
		result.Active,
	).Scan(&result.ID)

	if err != nil {
		return fmt.Errorf("failed to create draw result: %w", err)
	}

	return nil
}

// GetActiveByDate returns all active results for a date
func (r *DrawResultRepository) GetActiveByDate(ctx context.Context, date time.Time) ([]*models.DrawResult, error) {
	query := `
		SELECT id, lottery_id, draw_date, winning_number, draw_slot, active
		FROM draw_results
		WHERE draw_date = $1::date
		  AND active
		ORDER BY lottery_id, draw_slot
	`

	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get draw results for date: %w", err)
	}
	defer rows.Close()

	var results []*models.DrawResult
	for rows.Next() {
		var result models.DrawResult
		err := rows.Scan(
			&result.ID,
			&result.LotteryID,
			&result.DrawDate,
			&result.WinningNumber,
			&result.DrawSlot,
			&result.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draw result: %w", err)
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draw results: %w", err)
	}

	return results, nil
}

// CountByDate returns how many results were registered for a date
func (r *DrawResultRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM draw_results
		WHERE draw_date = $1::date
	`

	var count int64
	if err := r.q.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count draw results for date: %w", err)
	}

	return count, nil
}
