package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"
	"party-room-api/resolver"

	"github.com/gin-gonic/gin"
)

type CreateDishRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	FullName string  `json:"fullName" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
	MemberID int     `json:"member_id"` // 1-based index into settings.families
}

type UpdateDishRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	FullName string  `json:"fullName" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
}

// CreateDish adds a dish to an active room. The contributing member is
// resolved lazily from the room settings; rooms without configured families
// store the dish unassigned.
func CreateDish(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal type"})
		return
	}

	var memberID *uint
	if room.Settings != nil && len(room.Settings.Families) > 0 {
		member, err := resolver.ResolveMember(config.DB, room, req.MemberID, req.FullName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		memberID = &member.ID
	}

	dish := models.Dish{
		RoomID:   room.ID,
		MemberID: memberID,
		Name:     req.Name,
		FullName: req.FullName,
		Quantity: req.Quantity,
		MealType: models.MealType(req.MealType),
	}
	if err := config.DB.Create(&dish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dish)
}

// ListDishes returns the room's dishes, newest first
func ListDishes(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	var dishes []models.Dish
	if err := config.DB.Where("room_id = ?", room.ID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&dishes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// UpdateDish overwrites a dish's fields (full replace, not a patch)
func UpdateDish(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var dish models.Dish
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("dish_id"), room.ID).
		First(&dish).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}

	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal type"})
		return
	}

	dish.Name = req.Name
	dish.Quantity = req.Quantity
	dish.FullName = req.FullName
	dish.MealType = models.MealType(req.MealType)
	if err := config.DB.Save(&dish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// DeleteDish removes a dish from its room
func DeleteDish(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var dish models.Dish
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("dish_id"), room.ID).
		First(&dish).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	if err := config.DB.Delete(&dish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}
