package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"carpool_api/internal/models"
)

// Home is the API landing route.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Carpool API!"})
}

// isUniqueViolation matches duplicate-key failures, either as the
// translated gorm error or the raw postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}

// writeSaveError maps a failed write onto the API error contract:
// validation and uniqueness problems are the client's fault, the rest are
// server errors. The surrounding transaction has already been rolled back.
func writeSaveError(c *gin.Context, err error, conflictMsg string) {
	switch {
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isUniqueViolation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": conflictMsg})
	default:
		logrus.WithError(err).Error("database write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
	}
}

// writeLookupError turns a failed read into 404 or 500.
func writeLookupError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	logrus.WithError(err).Error("database read failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
}
