package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"party-room-api/config"
	"party-room-api/lookups"
	"party-room-api/models"
	"party-room-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the real router against a fresh in-memory database
func setupTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// A second pool connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r, lookups.Default())
	return r
}

// doJSON performs a request against the router and records the response
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// createRoom creates a pending room through the API
func createRoom(t *testing.T, r *gin.Engine) models.Room {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/rooms/", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var room models.Room
	decode(t, w, &room)
	return room
}

// activateRoom activates an existing room with the given family names
func activateRoom(t *testing.T, r *gin.Engine, seed string, families []string) models.Room {
	t.Helper()
	participants := len(families)
	if participants == 0 {
		participants = 1
	}
	w := doJSON(t, r, http.MethodPut, "/api/rooms/"+seed+"/activate", gin.H{
		"settings": gin.H{
			"participantCount": participants,
			"mealCount":        2,
			"language":         "en",
			"families":         families,
			"mealType":         "Main Course",
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var active models.Room
	decode(t, w, &active)
	return active
}

// createActiveRoom creates and activates a room in one step
func createActiveRoom(t *testing.T, r *gin.Engine, families []string) models.Room {
	t.Helper()
	room := createRoom(t, r)
	return activateRoom(t, r, room.Seed, families)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
