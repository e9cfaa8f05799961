package handlers

import (
	"net/http"

	"party-room-api/config"
	"party-room-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	FamilyID uint   `json:"family_id" binding:"required"`
}

// ListMembers returns all members across the room's families
func ListMembers(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var members []models.Member
	if err := config.DB.
		Joins("JOIN families ON families.id = members.family_id").
		Where("families.room_id = ?", room.ID).
		Order("members.id asc").
		Find(&members).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember adds a member to one of the room's families
func CreateMember(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The target family must belong to this room
	var family models.Family
	if err := config.DB.Where("id = ? AND room_id = ?", req.FamilyID, room.ID).
		First(&family).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found in this room"})
		return
	}

	member := models.Member{FamilyID: family.ID, Name: req.Name}
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// DeleteMember removes a member; their dishes and drinks become unassigned
func DeleteMember(c *gin.Context) {
	room, ok := fetchRoom(c)
	if !ok {
		return
	}

	var member models.Member
	if err := config.DB.
		Joins("JOIN families ON families.id = members.family_id").
		Where("members.id = ? AND families.room_id = ?", c.Param("member_id"), room.ID).
		First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Dish{}).Where("member_id = ?", member.ID).
			Update("member_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Drink{}).Where("member_id = ?", member.ID).
			Update("member_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
