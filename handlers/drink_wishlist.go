package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"

	"github.com/gin-gonic/gin"
)

type CreateDrinkWishRequest struct {
	DrinkName         string  `json:"drink_name" binding:"required"`
	Brand             string  `json:"brand"`
	Description       string  `json:"description"`
	RequestedFrom     string  `json:"requested_from"`
	RequestedQuantity float64 `json:"requested_quantity" binding:"required,gt=0"`
}

// CreateDrinkWish records a drink request nobody has claimed yet
func CreateDrinkWish(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var req CreateDrinkWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wish := models.DrinkWishlistItem{
		RoomID:            room.ID,
		DrinkName:         req.DrinkName,
		Brand:             req.Brand,
		Description:       req.Description,
		RequestedFrom:     req.RequestedFrom,
		RequestedQuantity: req.RequestedQuantity,
	}
	if err := config.DB.Create(&wish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, wish)
}

// ListDrinkWishes returns the room's drink wishlist, newest first
func ListDrinkWishes(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	var wishes []models.DrinkWishlistItem
	if err := config.DB.Where("room_id = ?", room.ID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&wishes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wishes)
}

// DeleteDrinkWish removes a drink wish from its room
func DeleteDrinkWish(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var wish models.DrinkWishlistItem
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("wish_id"), room.ID).
		First(&wish).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink wish not found"})
		return
	}
	if err := config.DB.Delete(&wish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drink wish deleted successfully"})
}
