package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAdminFixture(t *testing.T, r *gin.Engine, username string) map[string]any {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/admins", gin.H{
		"username":     username,
		"password":     "adminpass1",
		"phone_number": "0733111222",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeMap(t, w)
}

func TestAdminRoundTrip(t *testing.T) {
	r := setupRouter(t)
	created := createAdminFixture(t, r, "ops")
	id := entityID(t, created)
	assert.NotContains(t, created, "password_hash")

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/admins/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeMap(t, w)
	assert.Equal(t, "ops", got["username"])
	assert.Equal(t, "0733111222", got["phone_number"])
	assert.NotContains(t, got, "password_hash")
}

func TestCreateAdminMissingPassword(t *testing.T) {
	r := setupRouter(t)
	w := doRequest(t, r, http.MethodPost, "/admins", gin.H{"username": "no-pass"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	r := setupRouter(t)
	createAdminFixture(t, r, "root")

	w := doRequest(t, r, http.MethodPost, "/admins", gin.H{
		"username": "root",
		"password": "anotherpass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := doRequest(t, r, http.MethodGet, "/admins", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Len(t, decodeList(t, list), 1)
}

func TestUpdateAdminPartial(t *testing.T) {
	r := setupRouter(t)
	created := createAdminFixture(t, r, "renameme")
	id := entityID(t, created)

	w := doRequest(t, r, http.MethodPatch, fmt.Sprintf("/admins/%d", id), gin.H{
		"phone_number": "0700000001",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decodeMap(t, w)
	assert.Equal(t, "0700000001", got["phone_number"])
	assert.Equal(t, "renameme", got["username"], "omitted fields keep their values")
}

func TestDeleteAdmin(t *testing.T) {
	r := setupRouter(t)
	created := createAdminFixture(t, r, "shortlived")
	id := entityID(t, created)

	del := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	assert.Empty(t, del.Body.Bytes())

	get := doRequest(t, r, http.MethodGet, fmt.Sprintf("/admins/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, get.Code)
}
