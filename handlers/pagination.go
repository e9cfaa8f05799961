package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultListLimit = 100

// pagination reads the skip/limit query params used by all list endpoints
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	return offset, limit
}
