package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptLog records one generated ticket for auditing. It is the only
// database-backed entity; the receipt flow itself never reads it.
type ReceiptLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   string    `gorm:"size:100;not null;index" json:"order_id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FileURL   string    `gorm:"size:1024" json:"file_url"`
	Customer  string    `gorm:"size:255" json:"customer"`
	SubTotal  float64   `json:"sub_total"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before inserting a new log row
func (r *ReceiptLog) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptLog model
func (ReceiptLog) TableName() string {
	return "receipt_logs"
}
