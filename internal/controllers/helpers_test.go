package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carpool_api/internal/config"
	"carpool_api/internal/routes"
)

// setupRouter gives each test its own in-memory database and a freshly
// built engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter("test-secret")
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func entityID(t *testing.T, m map[string]any) int {
	t.Helper()
	id, ok := m["id"].(float64)
	require.True(t, ok, "response has no numeric id: %v", m)
	return int(id)
}

// Fixture builders going through the public API.

func createUserFixture(t *testing.T, r *gin.Engine, username string) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/users", gin.H{
		"username":     username,
		"email":        username + "@example.com",
		"password":     "secret123",
		"phone_number": "0700123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}

func createRideFixture(t *testing.T, r *gin.Engine, driverID int) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/rides", gin.H{
		"pickup_location":  "Westlands",
		"dropoff_location": "CBD",
		"pickup_time":      "2025-01-01T08:00",
		"dropoff_time":     "2025-01-01T09:00",
		"distance":         10,
		"estimated_cost":   20,
		"driver_id":        driverID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}

func createBookingFixture(t *testing.T, r *gin.Engine, userID, rideID int) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/bookings", gin.H{
		"total_cost": 20,
		"user_id":    userID,
		"ride_id":    rideID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}

func createPaymentFixture(t *testing.T, r *gin.Engine, userID, bookingID int) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/payments", gin.H{
		"amount":         20,
		"payment_method": "cash",
		"user_id":        userID,
		"booking_id":     bookingID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}

func createReviewFixture(t *testing.T, r *gin.Engine, rating, userID, bookingID, rideID int) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(t, r, http.MethodPost, "/reviews", gin.H{
		"rating":     rating,
		"comment":    "smooth ride",
		"user_id":    userID,
		"booking_id": bookingID,
		"ride_id":    rideID,
	})
}

func createVehicleFixture(t *testing.T, r *gin.Engine, userID int) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/vehicles", gin.H{
		"make":             "Toyota",
		"model":            "Hiace",
		"year":             2018,
		"color":            "white",
		"plate_number":     "KDA 123A",
		"seating_capacity": 14,
		"sacco":            "Super Metro",
		"user_id":          userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}
