package models

import "time"

type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:45;not null;index" json:"name"`
	AddressID uint    `gorm:"not null" json:"address_id"`
	Address   Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"address"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedBy    string    `gorm:"size:50" json:"created_by"`
	LastUpdateBy string    `gorm:"size:50" json:"last_update_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
