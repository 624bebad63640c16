package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"loteria/models"
)

func TestCustomerService_RegisterCustomer(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockCustomerRepo := new(MockCustomerRepository)
	mockUoW.SetRepositories(mockCustomerRepo, nil, nil, nil, nil)

	svc := NewCustomerService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)
	mockCustomerRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Customer) bool {
		return c.Name == "Maria Lopez" && c.Phone == "555-0101"
	})).Return(nil).Run(func(args mock.Arguments) {
		customer := args.Get(1).(*models.Customer)
		customer.ID = 7
	})

	customer, err := svc.RegisterCustomer(ctx, CustomerInput{
		Name:      "Maria Lopez",
		Phone:     "555-0101",
		Address:   "Calle 10 #4-23",
		BirthDate: "1990-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)

	mockCustomerRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCustomerService_RegisterCustomer_Invalid(t *testing.T) {
	mockFactory := new(MockUnitOfWorkFactory)
	svc := NewCustomerService(mockFactory)

	_, err := svc.RegisterCustomer(context.Background(), CustomerInput{
		Name:      "Maria Lopez",
		Phone:     "555-0101",
		BirthDate: "yesterday",
	})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "birth_date", verrs[0].Field)
	mockFactory.AssertNotCalled(t, "Create")
}
