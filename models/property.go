package models

import (
	"gorm.io/gorm"
)

// Property is a listing. The ledger treats it as a display-only lookup;
// no financial invariant depends on it.
type Property struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}
