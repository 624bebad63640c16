package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"loteria/models"
)

type customerService struct {
	uowFactory UnitOfWorkFactory
}

// NewCustomerService creates a new customer service
func NewCustomerService(uowFactory UnitOfWorkFactory) CustomerService {
	return &customerService{
		uowFactory: uowFactory,
	}
}

func (s *customerService) RegisterCustomer(ctx context.Context, input CustomerInput) (*models.Customer, error) {
	customer, verrs := input.Validate()
	if verrs != nil {
		return nil, verrs
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"customer_id": customer.ID,
		"name":        customer.Name,
	}).Info("Registered new customer")

	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	customers, err := uow.CustomerRepository().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return customers, nil
}
