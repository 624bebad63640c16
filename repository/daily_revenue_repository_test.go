package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loteria/models"
	"loteria/repository/testutil"
)

func TestDailyRevenueRepository_UpsertReplacesExistingRow(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	lotteryRepo := NewLotteryRepository(testDB.DB)
	revenueRepo := NewDailyRevenueRepository(testDB.DB)

	lottery := lotteryByName(t, lotteryRepo, models.LotteryLaSanta)
	today := time.Now()

	first := &models.DailyRevenue{
		Date:           today,
		LotteryID:      lottery.ID,
		TotalCollected: decimal.RequireFromString("100.00"),
		TotalPrizes:    decimal.RequireFromString("70.00"),
	}
	require.NoError(t, revenueRepo.Upsert(ctx, first))

	// Refreshing the same day overwrites the totals instead of adding a row
	second := &models.DailyRevenue{
		Date:           today,
		LotteryID:      lottery.ID,
		TotalCollected: decimal.RequireFromString("150.00"),
		TotalPrizes:    decimal.RequireFromString("70.00"),
	}
	require.NoError(t, revenueRepo.Upsert(ctx, second))

	rows, err := revenueRepo.GetByDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, lottery.ID, rows[0].LotteryID)
	assert.True(t, rows[0].TotalCollected.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, rows[0].TotalPrizes.Equal(decimal.RequireFromString("70.00")))
}
