// Package domain defines the core persistence models for the application.
package domain

import "time"

// AdoptionReceipt records the outcome of a previously processed adoption
// request, keyed by (user_id, pet_id, key). It enables safe retries of
// POST /pets/:id/adopt after a transport or storage failure: a retried
// request carrying the same Idempotency-Key is answered from the receipt
// instead of re-running the adoption transaction.
type AdoptionReceipt struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	UserID    string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_pet_key,priority:1"`
	PetID     string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_pet_key,priority:2"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_user_pet_key,priority:3"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (AdoptionReceipt) TableName() string { return "adoption_receipts" }
