package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reviewTestFixtures(t *testing.T, r *gin.Engine) (userID, bookingID, rideID int) {
	t.Helper()
	user := createUserFixture(t, r, "reviewer")
	driver := createUserFixture(t, r, "reviewdriver")
	ride := createRideFixture(t, r, entityID(t, driver))
	booking := createBookingFixture(t, r, entityID(t, user), entityID(t, ride))
	return entityID(t, user), entityID(t, booking), entityID(t, ride)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)

	for _, rating := range []int{0, 6} {
		w := createReviewFixture(t, r, rating, userID, bookingID, rideID)
		require.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)
		assert.Contains(t, decodeMap(t, w)["error"], "between 1 and 5")
	}
	for _, rating := range []int{1, 5} {
		w := createReviewFixture(t, r, rating, userID, bookingID, rideID)
		require.Equal(t, http.StatusCreated, w.Code, "rating %d", rating)
		assert.EqualValues(t, rating, decodeMap(t, w)["rating"])
	}
}

func TestReviewRoundTrip(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)

	created := createReviewFixture(t, r, 4, userID, bookingID, rideID)
	require.Equal(t, http.StatusCreated, created.Code)
	id := entityID(t, decodeMap(t, created))

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeMap(t, w)
	assert.EqualValues(t, 4, got["rating"])
	assert.Equal(t, "smooth ride", got["comment"])
	assert.EqualValues(t, bookingID, got["booking_id"])
	assert.EqualValues(t, rideID, got["ride_id"])
}

func TestCreateReviewMissingFields(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(t, r, http.MethodPost, "/reviews", gin.H{"rating": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReviewsByAuthor(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)
	other := createUserFixture(t, r, "other_reviewer")

	require.Equal(t, http.StatusCreated, createReviewFixture(t, r, 5, userID, bookingID, rideID).Code)
	require.Equal(t, http.StatusCreated, createReviewFixture(t, r, 2, entityID(t, other), bookingID, rideID).Code)

	all := doRequest(t, r, http.MethodGet, "/reviews", nil)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, decodeList(t, all), 2)

	filtered := doRequest(t, r, http.MethodGet, fmt.Sprintf("/reviews?user_id=%d", userID), nil)
	require.Equal(t, http.StatusOK, filtered.Code)
	reviews := decodeList(t, filtered)
	require.Len(t, reviews, 1)
	assert.EqualValues(t, 5, reviews[0]["rating"])
}

func TestUpdateReviewPartial(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)
	created := createReviewFixture(t, r, 3, userID, bookingID, rideID)
	require.Equal(t, http.StatusCreated, created.Code)
	id := entityID(t, decodeMap(t, created))

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/reviews/%d", id), gin.H{"rating": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeMap(t, w)
	assert.EqualValues(t, 5, got["rating"])
	assert.Equal(t, "smooth ride", got["comment"], "omitted fields keep their values")
}

func TestUpdateReviewOutOfRange(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)
	created := createReviewFixture(t, r, 3, userID, bookingID, rideID)
	require.Equal(t, http.StatusCreated, created.Code)
	id := entityID(t, decodeMap(t, created))

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/reviews/%d", id), gin.H{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	get := doRequest(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", id), nil)
	assert.EqualValues(t, 3, decodeMap(t, get)["rating"])
}

func TestDeleteReview(t *testing.T) {
	r := setupRouter(t)
	userID, bookingID, rideID := reviewTestFixtures(t, r)
	created := createReviewFixture(t, r, 3, userID, bookingID, rideID)
	require.Equal(t, http.StatusCreated, created.Code)
	id := entityID(t, decodeMap(t, created))

	del := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil)
	require.Equal(t, http.StatusNoContent, del.Code)

	get := doRequest(t, r, http.MethodGet, fmt.Sprintf("/reviews/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}
