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

func TestCustomerRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	customerRepo := NewCustomerRepository(testDB.DB)

	birthDate := time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)
	customer := testutil.CreateTestCustomerWithBirthDate("Maria Lopez", birthDate)
	require.NoError(t, customerRepo.Create(ctx, customer))
	require.NotZero(t, customer.ID)
	require.False(t, customer.RegisteredAt.IsZero())

	saved, err := customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Maria Lopez", saved.Name)
	require.NotNil(t, saved.BirthDate)
	assert.Equal(t, birthDate.Month(), saved.BirthDate.Month())
	assert.Equal(t, birthDate.Day(), saved.BirthDate.Day())
}

func TestCustomerRepository_List(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	customerRepo := NewCustomerRepository(testDB.DB)

	require.NoError(t, customerRepo.Create(ctx, testutil.CreateTestCustomer("First Customer")))
	require.NoError(t, customerRepo.Create(ctx, testutil.CreateTestCustomer("Second Customer")))

	customers, err := customerRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestCustomerRepository_DeleteCascadesToBets(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	customerRepo := NewCustomerRepository(testDB.DB)
	lotteryRepo := NewLotteryRepository(testDB.DB)
	betRepo := NewBetRepository(testDB.DB)

	customer := testutil.CreateTestCustomer("Maria Lopez")
	require.NoError(t, customerRepo.Create(ctx, customer))
	lottery := lotteryByName(t, lotteryRepo, models.LotteryLaSanta)

	bet := testutil.CreateTestBet(customer.ID, lottery.ID, 42)
	require.NoError(t, betRepo.Create(ctx, bet))

	require.NoError(t, customerRepo.Delete(ctx, customer.ID))

	gone, err := customerRepo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	orphan, err := betRepo.GetByID(ctx, bet.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan)
}
