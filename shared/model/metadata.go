package model

import "time"

// Metadata carries the audit columns every table shares. The timestamps have
// no db tag so inserts leave them to the database defaults.
type Metadata struct {
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	CreatedBy  string    `db:"created_by"`
	ModifiedBy string    `db:"modified_by"`
}
