package models

import "time"

// MealType is the closed set of course tags a dish can carry
type MealType string

const (
	MealEntree     MealType = "Entree"
	MealMainCourse MealType = "Main Course"
	MealDesert     MealType = "Desert"
)

// MealTypes in menu order
var MealTypes = []MealType{MealEntree, MealMainCourse, MealDesert}

// ValidMealType reports whether s is one of the known meal types
func ValidMealType(s string) bool {
	for _, mt := range MealTypes {
		if s == string(mt) {
			return true
		}
	}
	return false
}

type Dish struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"room_id" gorm:"not null;index"`
	MemberID  *uint     `json:"member_id"` // nil when the room declares no families
	Member    *Member   `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	Name      string    `json:"name" gorm:"not null"`
	FullName  string    `json:"fullName"` // display name of whoever brings it
	Quantity  float64   `json:"quantity"` // grams
	MealType  MealType  `json:"meal_type" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
