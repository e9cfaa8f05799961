package models

import "time"

// RoomStatus represents the lifecycle state of a party room
type RoomStatus string

const (
	RoomPending RoomStatus = "pending"
	RoomActive  RoomStatus = "active"
)

// RoomSettings is the configuration attached to a room at activation time.
// Field names follow the wire format used by the frontend.
type RoomSettings struct {
	ParticipantCount int      `json:"participantCount" binding:"required"`
	MealCount        int      `json:"mealCount" binding:"required"`
	Language         string   `json:"language" binding:"required"`
	Families         []string `json:"families"` // may be empty: dishes then stay unassigned
	MealType         string   `json:"mealType" binding:"required"`
}

type Room struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	Seed      string        `json:"seed" gorm:"uniqueIndex;not null"`
	Status    RoomStatus    `json:"status" gorm:"not null;default:'pending'"`
	Settings  *RoomSettings `json:"settings" gorm:"serializer:json"` // nil until activation
	Families  []Family      `json:"families,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
