package models

import "time"

// Country, City and Address form the normalized chain a Customer points to.
// Rows are shared between customers and never edited in place.

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	CreatedBy    string    `gorm:"size:50" json:"created_by"`
	LastUpdateBy string    `gorm:"size:50" json:"last_update_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type City struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:50;not null;index" json:"name"`
	CountryID uint    `gorm:"not null" json:"country_id"`
	Country   Country `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"country"`

	CreatedBy    string    `gorm:"size:50" json:"created_by"`
	LastUpdateBy string    `gorm:"size:50" json:"last_update_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Address struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Address    string `gorm:"size:50;not null" json:"address"`
	Address2   string `gorm:"size:50" json:"address2"`
	CityID     uint   `gorm:"not null" json:"city_id"`
	City       City   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"city"`
	PostalCode string `gorm:"size:10" json:"postal_code"`
	Phone      string `gorm:"size:20" json:"phone"`

	CreatedBy    string    `gorm:"size:50" json:"created_by"`
	LastUpdateBy string    `gorm:"size:50" json:"last_update_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
