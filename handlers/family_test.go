package handlers_test

import (
	"net/http"
	"testing"

	"party-room-api/config"
	"party-room-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyCRUD(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/families/"+itoa(room.ID), gin.H{"name": "Popescu"})
	require.Equal(t, http.StatusCreated, w.Code)
	var family models.Family
	decode(t, w, &family)
	assert.Equal(t, "Popescu", family.Name)
	assert.Equal(t, room.ID, family.RoomID)

	// Duplicate name within the same room is rejected by the unique index
	w = doJSON(t, r, http.MethodPost, "/api/families/"+itoa(room.ID), gin.H{"name": "Popescu"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/families/"+itoa(room.ID)+"/"+itoa(family.ID), gin.H{"name": "Ionescu"})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &family)
	assert.Equal(t, "Ionescu", family.Name)

	w = doJSON(t, r, http.MethodGet, "/api/families/"+itoa(room.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var families []models.Family
	decode(t, w, &families)
	assert.Len(t, families, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/families/"+itoa(room.ID)+"/"+itoa(family.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/families/"+itoa(room.ID), nil)
	decode(t, w, &families)
	assert.Empty(t, families)
}

func TestSameFamilyNameAllowedAcrossRooms(t *testing.T) {
	r := setupTestApp(t)
	roomA := createActiveRoom(t, r, []string{"Smiths"})
	roomB := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/families/"+itoa(roomA.ID), gin.H{"name": "Popescu"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/families/"+itoa(roomB.ID), gin.H{"name": "Popescu"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteFamilyUnassignsDishes(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/dishes/"+itoa(room.ID), gin.H{
		"name": "Pie", "quantity": 500, "fullName": "Alice",
		"meal_type": "Desert", "member_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var dish models.Dish
	decode(t, w, &dish)
	require.NotNil(t, dish.MemberID)

	var family models.Family
	require.NoError(t, config.DB.Where("room_id = ? AND name = ?", room.ID, "Smiths").First(&family).Error)

	w = doJSON(t, r, http.MethodDelete, "/api/families/"+itoa(room.ID)+"/"+itoa(family.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Dish survives without an owner, members are gone
	require.NoError(t, config.DB.First(&dish, dish.ID).Error)
	assert.Nil(t, dish.MemberID)
	var memberCount int64
	require.NoError(t, config.DB.Model(&models.Member{}).Count(&memberCount).Error)
	assert.Zero(t, memberCount)
}

func TestMemberEndpoints(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/families/"+itoa(room.ID), gin.H{"name": "Popescu"})
	require.Equal(t, http.StatusCreated, w.Code)
	var family models.Family
	decode(t, w, &family)

	w = doJSON(t, r, http.MethodPost, "/api/members/"+itoa(room.ID), gin.H{
		"name": "Mircea", "family_id": family.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var member models.Member
	decode(t, w, &member)
	assert.Equal(t, family.ID, member.FamilyID)

	w = doJSON(t, r, http.MethodGet, "/api/members/"+itoa(room.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members []models.Member
	decode(t, w, &members)
	assert.Len(t, members, 1)

	// A family from another room cannot be targeted
	other := createActiveRoom(t, r, []string{"Kims"})
	w = doJSON(t, r, http.MethodPost, "/api/members/"+itoa(other.ID), gin.H{
		"name": "Mircea", "family_id": family.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/members/"+itoa(room.ID)+"/"+itoa(member.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/members/"+itoa(room.ID), nil)
	decode(t, w, &members)
	assert.Empty(t, members)
}
