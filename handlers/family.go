package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FamilyRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListFamilies returns the room's families with their members
func ListFamilies(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var families []models.Family
	if err := config.DB.Preload("Members").
		Where("room_id = ?", room.ID).
		Order("id asc").
		Find(&families).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, families)
}

// CreateFamily adds a family to a room. Families are normally materialized
// lazily on dish submission; this endpoint covers manual management.
func CreateFamily(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var req FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	family := models.Family{RoomID: room.ID, Name: req.Name}
	if err := config.DB.Create(&family).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, family)
}

// UpdateFamily renames a family
func UpdateFamily(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var family models.Family
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("family_id"), room.ID).
		First(&family).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
		return
	}

	var req FamilyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	family.Name = req.Name
	if err := config.DB.Save(&family).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, family)
}

// DeleteFamily removes a family and its members. Dishes and drinks the
// members contributed stay in the room but become unassigned.
func DeleteFamily(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var family models.Family
	if err := config.DB.Where("id = ? AND room_id = ?", c.Param("family_id"), room.ID).
		First(&family).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var memberIDs []uint
		if err := tx.Model(&models.Member{}).Where("family_id = ?", family.ID).
			Pluck("id", &memberIDs).Error; err != nil {
			return err
		}
		if len(memberIDs) > 0 {
			if err := tx.Model(&models.Dish{}).Where("member_id IN ?", memberIDs).
				Update("member_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Drink{}).Where("member_id IN ?", memberIDs).
				Update("member_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("family_id = ?", family.ID).Delete(&models.Member{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&family).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Family deleted successfully"})
}
