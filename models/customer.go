package models

import "time"

// Customer represents a registered customer of the shop
type Customer struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	BirthDate    time.Time `db:"birth_date" json:"birth_date"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}
