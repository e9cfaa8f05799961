package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"

	"github.com/gin-gonic/gin"
)

type CreateWishlistItemRequest struct {
	DishName          string  `json:"dish_name" binding:"required"`
	RequestedQuantity float64 `json:"requested_quantity" binding:"required,gt=0"`
	Notes             string  `json:"notes"`
}

// CreateWishlistItem records a dish request nobody has claimed yet
func CreateWishlistItem(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var req CreateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.WishlistItem{
		RoomID:            room.ID,
		DishName:          req.DishName,
		RequestedQuantity: req.RequestedQuantity,
		Notes:             req.Notes,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListWishlistItems returns the room's wishlist, newest first
func ListWishlistItems(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	var items []models.WishlistItem
	if err := config.DB.Where("room_id = ?", room.ID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteWishlistItem removes a wishlist entry from its room
func DeleteWishlistItem(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var item models.WishlistItem
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("item_id"), room.ID).
		First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found in this room"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted successfully"})
}
