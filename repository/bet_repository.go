package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"loteria/database"
	"loteria/models"
)

// BetRepository implements bet data access
type BetRepository struct {
	q Queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// newBetRepositoryWithTx creates a new bet repository with a transaction
func newBetRepositoryWithTx(tx Queryable) *BetRepository {
	return &BetRepository{q: tx}
}

// Create persists a new bet
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (customer_id, lottery_id, number, stake, sold_by, draw_slot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, sold_at
	`

	err := r.q.QueryRow(ctx, query,
		bet.CustomerID,
		bet.LotteryID,
		bet.Number,
		bet.Stake,
		bet.SoldBy,
		bet.DrawSlot,
	).Scan(&bet.ID, &bet.SoldAt)

	if err != nil {
		return fmt.Errorf("failed to create bet: %w", err)
	}

	return nil
}

// GetByID retrieves a bet by ID
func (r *BetRepository) GetByID(ctx context.Context, id int64) (*models.Bet, error) {
	query := `
		SELECT id, customer_id, lottery_id, number, stake, sold_at, sold_by,
		       draw_slot, is_winner, prize_paid, prize_paid_at
		FROM bets
		WHERE id = $1
	`

	var bet models.Bet
	err := r.q.QueryRow(ctx, query, id).Scan(
		&bet.ID,
		&bet.CustomerID,
		&bet.LotteryID,
		&bet.Number,
		&bet.Stake,
		&bet.SoldAt,
		&bet.SoldBy,
		&bet.DrawSlot,
		&bet.IsWinner,
		&bet.PrizePaid,
		&bet.PrizePaidAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet by ID %d: %w", id, err)
	}

	return &bet, nil
}

// GetDetail retrieves a bet with its customer and lottery resolved
func (r *BetRepository) GetDetail(ctx context.Context, id int64) (*models.BetDetail, error) {
	query := `
		SELECT b.id, b.customer_id, b.lottery_id, b.number, b.stake, b.sold_at,
		       b.sold_by, b.draw_slot, b.is_winner, b.prize_paid, b.prize_paid_at,
		       c.id, c.name, c.phone, c.address, c.birth_date, c.registered_at,
		       l.id, l.name, l.payout_factor, l.daily_draws, l.active
		FROM bets b
		JOIN customers c ON c.id = b.customer_id
		JOIN lotteries l ON l.id = b.lottery_id
		WHERE b.id = $1
	`

	var detail models.BetDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.CustomerID,
		&detail.LotteryID,
		&detail.Number,
		&detail.Stake,
		&detail.SoldAt,
		&detail.SoldBy,
		&detail.DrawSlot,
		&detail.IsWinner,
		&detail.PrizePaid,
		&detail.PrizePaidAt,
		&detail.Customer.ID,
		&detail.Customer.Name,
		&detail.Customer.Phone,
		&detail.Customer.Address,
		&detail.Customer.BirthDate,
		&detail.Customer.RegisteredAt,
		&detail.Lottery.ID,
		&detail.Lottery.Name,
		&detail.Lottery.PayoutFactor,
		&detail.Lottery.DailyDraws,
		&detail.Lottery.Active,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet detail for ID %d: %w", id, err)
	}

	return &detail, nil
}

// MarkWinners flags every bet matching the draw result in one bulk update.
// Re-running the update for the same result touches the same rows and
// leaves them flagged, so the operation is idempotent.
func (r *BetRepository) MarkWinners(ctx context.Context, result *models.DrawResult) (int64, error) {
	query := `
		UPDATE bets
		SET is_winner = TRUE
		WHERE lottery_id = $1
		  AND draw_slot = $2
		  AND number = $3
		  AND sold_at::date = $4::date
	`

	tag, err := r.q.Exec(ctx, query,
		result.LotteryID,
		result.DrawSlot,
		result.WinningNumber,
		result.DrawDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark winning bets: %w", err)
	}

	return tag.RowsAffected(), nil
}

// FindWinning returns the bets matching a draw result, with customer and
// lottery resolved. The predicate is the same as MarkWinners.
func (r *BetRepository) FindWinning(ctx context.Context, result *models.DrawResult) ([]*models.BetDetail, error) {
	query := `
		SELECT b.id, b.customer_id, b.lottery_id, b.number, b.stake, b.sold_at,
		       b.sold_by, b.draw_slot, b.is_winner, b.prize_paid, b.prize_paid_at,
		       c.id, c.name, c.phone, c.address, c.birth_date, c.registered_at,
		       l.id, l.name, l.payout_factor, l.daily_draws, l.active
		FROM bets b
		JOIN customers c ON c.id = b.customer_id
		JOIN lotteries l ON l.id = b.lottery_id
		WHERE b.lottery_id = $1
		  AND b.draw_slot = $2
		  AND b.number = $3
		  AND b.sold_at::date = $4::date
		ORDER BY b.sold_at ASC
	`

	rows, err := r.q.Query(ctx, query,
		result.LotteryID,
		result.DrawSlot,
		result.WinningNumber,
		result.DrawDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find winning bets: %w", err)
	}
	defer rows.Close()

	return scanBetDetails(rows)
}

// WinningForDate returns all winning bets sold on the given date
func (r *BetRepository) WinningForDate(ctx context.Context, date time.Time) ([]*models.BetDetail, error) {
	query := `
		SELECT b.id, b.customer_id, b.lottery_id, b.number, b.stake, b.sold_at,
		       b.sold_by, b.draw_slot, b.is_winner, b.prize_paid, b.prize_paid_at,
		       c.id, c.name, c.phone, c.address, c.birth_date, c.registered_at,
		       l.id, l.name, l.payout_factor, l.daily_draws, l.active
		FROM bets b
		JOIN customers c ON c.id = b.customer_id
		JOIN lotteries l ON l.id = b.lottery_id
		WHERE b.is_winner
		  AND b.sold_at::date = $1::date
		ORDER BY b.sold_at ASC
	`

	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get winning bets for date: %w", err)
	}
	defer rows.Close()

	return scanBetDetails(rows)
}

func scanBetDetails(rows pgx.Rows) ([]*models.BetDetail, error) {
	var details []*models.BetDetail
	for rows.Next() {
		var detail models.BetDetail
		err := rows.Scan(
			&detail.ID,
			&detail.CustomerID,
			&detail.LotteryID,
			&detail.Number,
			&detail.Stake,
			&detail.SoldAt,
			&detail.SoldBy,
			&detail.DrawSlot,
			&detail.IsWinner,
			&detail.PrizePaid,
			&detail.PrizePaidAt,
			&detail.Customer.ID,
			&detail.Customer.Name,
			&detail.Customer.Phone,
			&detail.Customer.Address,
			&detail.Customer.BirthDate,
			&detail.Customer.RegisteredAt,
			&detail.Lottery.ID,
			&detail.Lottery.Name,
			&detail.Lottery.PayoutFactor,
			&detail.Lottery.DailyDraws,
			&detail.Lottery.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet detail: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bet details: %w", err)
	}

	return details, nil
}

// SumByLottery aggregates stakes per lottery over an inclusive sale-date range
func (r *BetRepository) SumByLottery(ctx context.Context, start, end time.Time, lotteryID *int64) ([]models.RevenueGroup, error) {
	query := `
		SELECT l.id, l.name, COALESCE(SUM(b.stake), 0), COUNT(b.id)
		FROM bets b
		JOIN lotteries l ON l.id = b.lottery_id
		WHERE b.sold_at::date BETWEEN $1::date AND $2::date
		  AND ($3::bigint IS NULL OR b.lottery_id = $3)
		GROUP BY l.id, l.name
		ORDER BY l.name
	`

	rows, err := r.q.Query(ctx, query, start, end, lotteryID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stakes by lottery: %w", err)
	}
	defer rows.Close()

	var groups []models.RevenueGroup
	for rows.Next() {
		var group models.RevenueGroup
		err := rows.Scan(
			&group.LotteryID,
			&group.LotteryName,
			&group.Total,
			&group.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue group: %w", err)
		}
		groups = append(groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue groups: %w", err)
	}

	return groups, nil
}

// CountAndSumForDate returns the bet count and collected total for one day
func (r *BetRepository) CountAndSumForDate(ctx context.Context, date time.Time) (*models.DashboardStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(stake), 0)
		FROM bets
		WHERE sold_at::date = $1::date
	`

	var stats models.DashboardStats
	err := r.q.QueryRow(ctx, query, date).Scan(&stats.BetsToday, &stats.CollectedToday)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet stats for date: %w", err)
	}

	return &stats, nil
}

// MarkPrizePaid sets the prize-paid flag and timestamp on a winning bet
func (r *BetRepository) MarkPrizePaid(ctx context.Context, id int64, paidAt time.Time) error {
	query := `
		UPDATE bets
		SET prize_paid = TRUE,
		    prize_paid_at = $2
		WHERE id = $1
		  AND is_winner
		  AND NOT prize_paid
	`

	tag, err := r.q.Exec(ctx, query, id, paidAt)
	if err != nil {
		return fmt.Errorf("failed to mark prize paid for bet %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bet %d is not an unpaid winner", id)
	}

	return nil
}
