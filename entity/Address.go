package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	StreetAddress string `gorm:"not null" json:"street_address"`
	City          string `gorm:"not null" json:"city"`
	PostalCode    string `gorm:"not null" json:"postal_code"`
}

func (a Address) String() string {
	return a.StreetAddress + ", " + a.City + ", " + a.PostalCode
}
