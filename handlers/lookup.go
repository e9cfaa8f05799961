package handlers

import (
	"net/http"

	"party-room-api/lookups"

	"github.com/gin-gonic/gin"
)

// The lookup endpoints serve immutable tables built at startup and injected
// here, so no handler reaches into package-level configuration state.

// GetMealTypes returns the fixed meal type list
func GetMealTypes(tables lookups.Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tables.MealTypes)
	}
}

// GetDrinkCategories returns the fixed drink category list
func GetDrinkCategories(tables lookups.Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tables.DrinkCategories)
	}
}

// GetFamilyAffiliations returns the legacy single-tenant affiliation list
func GetFamilyAffiliations(tables lookups.Tables) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, tables.FamilyAffiliations)
	}
}
