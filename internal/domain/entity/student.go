package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents an enrolled learner in the driving school
type Student struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	AdmissionNo  string         `gorm:"size:50;unique;not null" json:"admission_no"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        *string        `gorm:"size:255" json:"email,omitempty"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	IDNumber     *string        `gorm:"size:50;column:id_number" json:"id_number,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	LicenseClass *string        `gorm:"size:20" json:"license_class,omitempty"`
	Photo        *string        `gorm:"size:255" json:"photo,omitempty"`
	JoinedAt     time.Time      `gorm:"type:date" json:"joined_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Payments []Payment `gorm:"foreignKey:StudentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new student
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Student model
func (Student) TableName() string {
	return "students"
}
