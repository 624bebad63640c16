package repository

import (
	"context"
	"fmt"
	"time"

	"loteria/database"
	"loteria/models"
)

// DailyRevenueRepository implements the derived revenue summary data access
type DailyRevenueRepository struct {
	q Queryable
}

// NewDailyRevenueRepository creates a new daily revenue repository
func NewDailyRevenueRepository(db *database.DB) *DailyRevenueRepository {
	return &DailyRevenueRepository{q: db.Pool}
}

// newDailyRevenueRepositoryWithTx creates a new daily revenue repository with a transaction
func newDailyRevenueRepositoryWithTx(tx Queryable) *DailyRevenueRepository {
	return &DailyRevenueRepository{q: tx}
}

// Upsert inserts or replaces the summary row for (date, lottery)
func (r *DailyRevenueRepository) Upsert(ctx context.Context, revenue *models.DailyRevenue) error {
	query := `
		INSERT INTO daily_revenues (revenue_date, lottery_id, total_collected, total_prizes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (revenue_date, lottery_id)
		DO UPDATE SET total_collected = EXCLUDED.total_collected,
		              total_prizes = EXCLUDED.total_prizes
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		revenue.Date,
		revenue.LotteryID,
		revenue.TotalCollected,
		revenue.TotalPrizes,
	).Scan(&revenue.ID)

	if err != nil {
		return fmt.Errorf("failed to upsert daily revenue: %w", err)
	}

	return nil
}

// GetByDate returns all summary rows for a date
func (r *DailyRevenueRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.DailyRevenue, error) {
	query := `
		SELECT id, revenue_date, lottery_id, total_collected, total_prizes
		FROM daily_revenues
		WHERE revenue_date = $1::date
		ORDER BY lottery_id
	`

	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenues for date: %w", err)
	}
	defer rows.Close()

	var revenues []*models.DailyRevenue
	for rows.Next() {
		var revenue models.DailyRevenue
		err := rows.Scan(
			&revenue.ID,
			&revenue.Date,
			&revenue.LotteryID,
			&revenue.TotalCollected,
			&revenue.TotalPrizes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily revenue: %w", err)
		}
		revenues = append(revenues, &revenue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily revenues: %w", err)
	}

	return revenues, nil
}
