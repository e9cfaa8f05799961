package handlers_test

import (
	"net/http"
	"testing"

	"party-room-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistLifecycle(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/wishlist/"+itoa(room.ID), gin.H{
		"dish_name": "Sarmale", "requested_quantity": 1000, "notes": "grandma's recipe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.WishlistItem
	decode(t, w, &item)
	assert.Equal(t, "Sarmale", item.DishName)
	assert.Equal(t, room.ID, item.RoomID)

	w = doJSON(t, r, http.MethodGet, "/api/wishlist/"+itoa(room.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.WishlistItem
	decode(t, w, &items)
	require.Len(t, items, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/wishlist/"+itoa(room.ID)+"/"+itoa(item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/wishlist/"+itoa(room.ID), nil)
	decode(t, w, &items)
	assert.Empty(t, items)
}

func TestWishlistRequiresActiveRoom(t *testing.T) {
	r := setupTestApp(t)
	room := createRoom(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/wishlist/"+itoa(room.ID), gin.H{
		"dish_name": "Sarmale", "requested_quantity": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/wishlist/424242", gin.H{
		"dish_name": "Sarmale", "requested_quantity": 1000,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWishlistItemWrongRoom(t *testing.T) {
	r := setupTestApp(t)
	roomA := createActiveRoom(t, r, []string{"Smiths"})
	roomB := createActiveRoom(t, r, []string{"Kims"})

	w := doJSON(t, r, http.MethodPost, "/api/wishlist/"+itoa(roomA.ID), gin.H{
		"dish_name": "Sarmale", "requested_quantity": 1000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.WishlistItem
	decode(t, w, &item)

	w = doJSON(t, r, http.MethodDelete, "/api/wishlist/"+itoa(roomB.ID)+"/"+itoa(item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDrinkWishlistLifecycle(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	w := doJSON(t, r, http.MethodPost, "/api/drink-wishlist/"+itoa(room.ID), gin.H{
		"drink_name": "Cider", "brand": "Strongbow", "requested_from": "Alice",
		"requested_quantity": 2000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var wish models.DrinkWishlistItem
	decode(t, w, &wish)
	assert.Equal(t, "Cider", wish.DrinkName)
	assert.Equal(t, "Strongbow", wish.Brand)

	w = doJSON(t, r, http.MethodGet, "/api/drink-wishlist/"+itoa(room.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var wishes []models.DrinkWishlistItem
	decode(t, w, &wishes)
	require.Len(t, wishes, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/drink-wishlist/"+itoa(room.ID)+"/"+itoa(wish.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/drink-wishlist/"+itoa(room.ID)+"/"+itoa(wish.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWishlistNewestFirstWithPagination(t *testing.T) {
	r := setupTestApp(t)
	room := createActiveRoom(t, r, []string{"Smiths"})

	for _, name := range []string{"A", "B", "C"} {
		w := doJSON(t, r, http.MethodPost, "/api/wishlist/"+itoa(room.ID), gin.H{
			"dish_name": name, "requested_quantity": 100,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/wishlist/"+itoa(room.ID)+"?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.WishlistItem
	decode(t, w, &items)
	require.Len(t, items, 2)
	assert.False(t, items[0].CreatedAt.Before(items[1].CreatedAt))
}
