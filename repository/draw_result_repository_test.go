package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loteria/models"
	"loteria/repository/testutil"
)

func TestDrawResultRepository_CreateAndGetActiveByDate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	lotteryRepo := NewLotteryRepository(testDB.DB)
	resultRepo := NewDrawResultRepository(testDB.DB)

	lottery := lotteryByName(t, lotteryRepo, models.LotteryLaSanta)
	today := time.Now()

	result := testutil.CreateTestDrawResult(lottery.ID, today, 42)
	require.NoError(t, resultRepo.Create(ctx, result))
	require.NotZero(t, result.ID)

	results, err := resultRepo.GetActiveByDate(ctx, today)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, lottery.ID, results[0].LotteryID)
	assert.Equal(t, 42, results[0].WinningNumber)
	assert.True(t, results[0].Active)

	// A different day has no results
	empty, err := resultRepo.GetActiveByDate(ctx, today.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDrawResultRepository_DuplicateActiveResultRejected(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	lotteryRepo := NewLotteryRepository(testDB.DB)
	resultRepo := NewDrawResultRepository(testDB.DB)

	lottery := lotteryByName(t, lotteryRepo, models.LotteryLaSanta)
	today := time.Now()

	first := testutil.CreateTestDrawResult(lottery.ID, today, 42)
	require.NoError(t, resultRepo.Create(ctx, first))

	// Same lottery, date and slot violates the active uniqueness index
	duplicate := testutil.CreateTestDrawResult(lottery.ID, today, 77)
	err := resultRepo.Create(ctx, duplicate)
	require.Error(t, err)

	// Another slot on the same day is fine
	secondSlot := testutil.CreateTestDrawResult(lottery.ID, today, 77)
	secondSlot.DrawSlot = 2
	require.NoError(t, resultRepo.Create(ctx, secondSlot))
}

func TestDrawResultRepository_CountByDate(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	lotteryRepo := NewLotteryRepository(testDB.DB)
	resultRepo := NewDrawResultRepository(testDB.DB)

	today := time.Now()

	count, err := resultRepo.CountByDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	laSanta := lotteryByName(t, lotteryRepo, models.LotteryLaSanta)
	laRifa := lotteryByName(t, lotteryRepo, models.LotteryLaRifa)

	require.NoError(t, resultRepo.Create(ctx, testutil.CreateTestDrawResult(laSanta.ID, today, 42)))
	require.NoError(t, resultRepo.Create(ctx, testutil.CreateTestDrawResult(laRifa.ID, today, 7)))

	count, err = resultRepo.CountByDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
