package models

import "time"

// WishlistItem is a requested dish not yet claimed by any member
type WishlistItem struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RoomID            uint      `json:"room_id" gorm:"not null;index"`
	DishName          string    `json:"dish_name" gorm:"not null"`
	RequestedQuantity float64   `json:"requested_quantity"` // grams
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

// DrinkWishlistItem is a requested drink not yet claimed by any member
type DrinkWishlistItem struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	RoomID            uint      `json:"room_id" gorm:"not null;index"`
	DrinkName         string    `json:"drink_name" gorm:"not null"`
	Brand             string    `json:"brand"`
	Description       string    `json:"description"`
	RequestedFrom     string    `json:"requested_from"`
	RequestedQuantity float64   `json:"requested_quantity"`
	CreatedAt         time.Time `json:"created_at"`
}
