package entity

import "time"

// Customer is a buyer the business issues invoices to.
// GSTIN is optional: unregistered (B2C) customers have none.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	GSTIN     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
