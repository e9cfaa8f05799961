package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"
	"party-room-api/resolver"

	"github.com/gin-gonic/gin"
)

type DrinkRequest struct {
	FullName      string  `json:"fullName" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	OtherCategory string  `json:"other_category"`
	Brand         string  `json:"brand"`
	Quantity      float64 `json:"quantity" binding:"required,gt=0"`
	MemberID      int     `json:"member_id"` // 1-based index into settings.families
}

// validateDrinkCategory enforces the closed category set and the conditional
// other_category requirement. Writes the error response itself.
func validateDrinkCategory(c *gin.Context, category, otherCategory string) bool {
	if !models.ValidDrinkCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drink category"})
		return false
	}
	if category == string(models.DrinkOther) && otherCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Other category description is required"})
		return false
	}
	return true
}

// CreateDrink adds a drink to an active room
func CreateDrink(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validateDrinkCategory(c, req.Category, req.OtherCategory) {
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

	drink := models.Drink{
		RoomID:        room.ID,
		MemberID:      memberID,
		FullName:      req.FullName,
		Category:      models.DrinkCategory(req.Category),
		OtherCategory: req.OtherCategory,
		Brand:         req.Brand,
		Quantity:      req.Quantity,
	}
	if err := config.DB.Create(&drink).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, drink)
}

// ListDrinks returns the room's drinks, newest first
func ListDrinks(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}
	offset, limit := pagination(c)

	var drinks []models.Drink
	if err := config.DB.Where("room_id = ?", room.ID).
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&drinks).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drinks)
}

// UpdateDrink overwrites all drink fields (full replace, not a patch)
func UpdateDrink(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var drink models.Drink
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("drink_id"), room.ID).
		First(&drink).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}

	var req DrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validateDrinkCategory(c, req.Category, req.OtherCategory) {
		return
	}

	drink.FullName = req.FullName
	drink.Category = models.DrinkCategory(req.Category)
	drink.OtherCategory = req.OtherCategory
	drink.Brand = req.Brand
	drink.Quantity = req.Quantity
	if err := config.DB.Save(&drink).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drink)
}

// DeleteDrink removes a drink from its room
func DeleteDrink(c *gin.Context) {
	room, ok := requireActiveRoom(c)
	if !ok {
		return
	}

	var drink models.Drink
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("drink_id"), room.ID).
		First(&drink).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Drink not found"})
		return
	}
	if err := config.DB.Delete(&drink).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Drink deleted successfully"})
}
