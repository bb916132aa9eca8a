package models

import "time"

// AuditFields are the timestamp columns shared by directory tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
