package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"loteria/database"
	"loteria/models"
)

// CustomerRepository implements customer data access
type CustomerRepository struct {
	q Queryable
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *database.DB) *CustomerRepository {
	return &CustomerRepository{q: db.Pool}
}

// newCustomerRepositoryWithTx creates a new customer repository with a transaction
func newCustomerRepositoryWithTx(tx Queryable) *CustomerRepository {
	return &CustomerRepository{q: tx}
}

// Create persists a new customer
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, phone, address, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, registered_at
	`

	err := r.q.QueryRow(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Address,
		customer.BirthDate,
	).Scan(&customer.ID, &customer.RegisteredAt)

	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, name, phone, address, birth_date, registered_at
		FROM customers
		WHERE id = $1
	`

	var customer models.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Address,
		&customer.BirthDate,
		&customer.RegisteredAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by ID %d: %w", id, err)
	}

	return &customer, nil
}

// List returns all customers, newest registrations first
func (r *CustomerRepository) List(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT id, name, phone, address, birth_date, registered_at
		FROM customers
		ORDER BY registered_at DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var customer models.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Phone,
			&customer.Address,
			&customer.BirthDate,
			&customer.RegisteredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// Delete removes a customer. Bets referencing the customer are removed
// by the store's cascade rule.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer with ID %d not found", id)
	}

	return nil
}
