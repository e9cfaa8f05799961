package models

import "time"

// Family groups members within a room. The (room_id, name) pair is unique so
// lazy get-or-create resolution can never materialize the same family twice.
type Family struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"room_id" gorm:"not null;uniqueIndex:idx_families_room_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_families_room_name"`
	Members   []Member  `json:"members,omitempty" gorm:"foreignKey:FamilyID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Member struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FamilyID  uint      `json:"family_id" gorm:"not null;uniqueIndex:idx_members_family_name"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_members_family_name"`
	Dishes    []Dish    `json:"dishes,omitempty" gorm:"foreignKey:MemberID"`
	Drinks    []Drink   `json:"drinks,omitempty" gorm:"foreignKey:MemberID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
