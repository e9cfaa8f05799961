package routes

import (
	"party-room-api/handlers"
	"party-room-api/lookups"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, tables lookups.Tables) {
	api := r.Group("/api")
	{
		// ── Rooms ──────────────────────────────────────────────────────
		api.POST("/rooms/", handlers.CreateRoom)
		api.GET("/rooms/:seed", handlers.GetRoom)
		api.GET("/rooms/:seed/status", handlers.GetRoomStatus)
		api.PUT("/rooms/:seed/activate", handlers.ActivateRoom)
		api.DELETE("/rooms/:seed", handlers.DeleteRoom)

		// ── Dishes (room-scoped) ───────────────────────────────────────
		api.GET("/dishes/:room_id", handlers.ListDishes)
		api.POST("/dishes/:room_id", handlers.CreateDish)
		api.PUT("/dishes/:room_id/:dish_id", handlers.UpdateDish)
		api.DELETE("/dishes/:room_id/:dish_id", handlers.DeleteDish)

		// ── Drinks (static categories route before the param route) ────
		api.GET("/drinks/categories", handlers.GetDrinkCategories(tables))
		api.GET("/drinks/:room_id", handlers.ListDrinks)
		api.POST("/drinks/:room_id", handlers.CreateDrink)
		api.PUT("/drinks/:room_id/:drink_id", handlers.UpdateDrink)
		api.DELETE("/drinks/:room_id/:drink_id", handlers.DeleteDrink)

		// ── Wishlists ──────────────────────────────────────────────────
		api.GET("/wishlist/:room_id", handlers.ListWishlistItems)
		api.POST("/wishlist/:room_id", handlers.CreateWishlistItem)
		api.DELETE("/wishlist/:room_id/:item_id", handlers.DeleteWishlistItem)

		api.GET("/drink-wishlist/:room_id", handlers.ListDrinkWishes)
		api.POST("/drink-wishlist/:room_id", handlers.CreateDrinkWish)
		api.DELETE("/drink-wishlist/:room_id/:wish_id", handlers.DeleteDrinkWish)

		// ── Families & members ─────────────────────────────────────────
		api.GET("/families/:room_id", handlers.ListFamilies)
		api.POST("/families/:room_id", handlers.CreateFamily)
		api.PUT("/families/:room_id/:family_id", handlers.UpdateFamily)
		api.DELETE("/families/:room_id/:family_id", handlers.DeleteFamily)

		api.GET("/members/:room_id", handlers.ListMembers)
		api.POST("/members/:room_id", handlers.CreateMember)
		api.DELETE("/members/:room_id/:member_id", handlers.DeleteMember)

		// ── Static lookups ─────────────────────────────────────────────
		api.GET("/meal-types/", handlers.GetMealTypes(tables))
		api.GET("/affiliations/", handlers.GetFamilyAffiliations(tables))
	}
}
