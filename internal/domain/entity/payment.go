package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents a single fee payment recorded against a student. The
// payments sharing one work number form the line items of one invoice.
type Payment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StudentID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkNo      string         `gorm:"size:100;not null;index" json:"work_no"`
	Description string         `gorm:"size:255;not null" json:"description"`
	PayDate     time.Time      `gorm:"type:date;not null" json:"pay_date"`
	Mode        string         `gorm:"size:50;not null" json:"mode"`
	Paid        int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Remaining   int64          `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Paid      float64 `json:"paid"`
		Remaining float64 `json:"remaining"`
	}{
		Alias:     Alias(p),
		Paid:      float64(p.Paid) / 100,
		Remaining: float64(p.Remaining) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// GetPaidDecimal returns the paid amount as a decimal
func (p *Payment) GetPaidDecimal() float64 {
	return float64(p.Paid) / 100
}

// GetRemainingDecimal returns the remaining balance as a decimal
func (p *Payment) GetRemainingDecimal() float64 {
	return float64(p.Remaining) / 100
}
