package models

import "time"

// DrinkCategory is the closed set of drink categories
type DrinkCategory string

const (
	DrinkSpirits    DrinkCategory = "Spirits"
	DrinkWine       DrinkCategory = "Wine"
	DrinkBeer       DrinkCategory = "Beer"
	DrinkSoftDrinks DrinkCategory = "Soft Drinks"
	DrinkMixers     DrinkCategory = "Mixers"
	DrinkOther      DrinkCategory = "Other"
)

// DrinkCategories in menu order
var DrinkCategories = []DrinkCategory{
	DrinkSpirits, DrinkWine, DrinkBeer, DrinkSoftDrinks, DrinkMixers, DrinkOther,
}

// ValidDrinkCategory reports whether s is one of the known categories
func ValidDrinkCategory(s string) bool {
	for _, dc := range DrinkCategories {
		if s == string(dc) {
			return true
		}
	}
	return false
}

type Drink struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	RoomID        uint          `json:"room_id" gorm:"not null;index"`
	MemberID      *uint         `json:"member_id"`
	Member        *Member       `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	FullName      string        `json:"fullName"`
	Category      DrinkCategory `json:"category" gorm:"not null"`
	OtherCategory string        `json:"other_category"` // required iff Category == Other
	Brand         string        `json:"brand"`
	Quantity      float64       `json:"quantity"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
