package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index:idx_appointment_owner_start,priority:1" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerID uint     `gorm:"not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"type:text" json:"location"`
	Contact     string `gorm:"type:text;index" json:"contact"`
	Type        string `gorm:"type:text" json:"type"`
	URL         string `gorm:"size:255" json:"url"`

	// Always stored in UTC.
	StartTime time.Time `gorm:"not null;index:idx_appointment_owner_start,priority:2" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedBy    string    `gorm:"size:50" json:"created_by"`
	LastUpdateBy string    `gorm:"size:50" json:"last_update_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
