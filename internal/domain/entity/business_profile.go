package entity

import "time"

// BusinessProfile is the single-row record describing the business that
// issues invoices. It is upserted, never duplicated. LogoPath and
// SignaturePath point at image files on disk; a missing or unreadable
// image must never block document rendering.
type BusinessProfile struct {
	ID            int // always 1; the table is pinned to a single row
	Name          string
	Address       string
	Phone         string
	GSTIN         string
	LogoPath      string
	SignaturePath string
	UpdatedAt     time.Time
}
