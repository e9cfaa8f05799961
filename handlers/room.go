package handlers

import (
	"errors"
	"math/rand"
	"net/http"

	"party-room-api/config"
	"party-room-api/models"
	"party-room-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	seedCharset     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seedLength      = 6
	maxSeedAttempts = 10
)

// generateRoomSeed returns a random shareable room token
func generateRoomSeed(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = seedCharset[rand.Intn(len(seedCharset))]
	}
	return string(b)
}

// CreateRoom creates an empty pending room with a fresh unique seed
func CreateRoom(c *gin.Context) {
	seed := generateRoomSeed(seedLength)
	for attempts := 0; ; attempts++ {
		var existing models.Room
		err := config.DB.Where("seed = ?", seed).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Collision — astronomically unlikely, but guarded anyway
		if attempts >= maxSeedAttempts {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not allocate a unique room seed"})
			return
		}
		seed = generateRoomSeed(seedLength)
	}

	room := models.Room{
		Seed:   seed,
		Status: models.RoomPending,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, room)
}

type ActivateRoomRequest struct {
	Settings models.RoomSettings `json:"settings" binding:"required"`
}

// ActivateRoom attaches settings to a pending room and marks it active.
// Activation is one-way; re-activating an active room is rejected.
// participantCount is not cross-checked against len(families) — that is the
// caller's responsibility.
func ActivateRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("seed = ?", c.Param("seed")).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	var req ActivateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(room.Status, models.RoomActive); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot activate room",
			"reason":        err.Error(),
			"current_state": room.Status,
		})
		return
	}

	room.Status = models.RoomActive
	room.Settings = &req.Settings
	if err := config.DB.Save(&room).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoom returns the full room record by seed
func GetRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("seed = ?", c.Param("seed")).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetRoomStatus returns just the lifecycle state of a room
func GetRoomStatus(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("seed = ?", c.Param("seed")).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": room.Status})
}

// DeleteRoom removes a room and everything it owns. The cascade runs in one
// transaction so a failure leaves the room intact.
func DeleteRoom(c *gin.Context) {
	var room models.Room
	if err := config.DB.Where("seed = ?", c.Param("seed")).First(&room).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var familyIDs []uint
		if err := tx.Model(&models.Family{}).Where("room_id = ?", room.ID).
			Pluck("id", &familyIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Drink{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.DrinkWishlistItem{}).Error; err != nil {
			return err
		}
		if len(familyIDs) > 0 {
			if err := tx.Where("family_id IN ?", familyIDs).Delete(&models.Member{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Family{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}

// fetchRoom loads the room referenced by the :room_id route param,
// writing a 404 and returning false when it does not exist
func fetchRoom(c *gin.Context) (*models.Room, bool) {
	var room models.Room
	if err := config.DB.First(&room, c.Param("room_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return nil, false
	}
	return &room, true
}

// requireActiveRoom additionally rejects rooms that were never activated
func requireActiveRoom(c *gin.Context) (*models.Room, bool) {
	room, ok := fetchRoom(c)
	if !ok {
		return nil, false
	}
	if room.Status != models.RoomActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Room is not active"})
		return nil, false
	}
	return room, true
}
