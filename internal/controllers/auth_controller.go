package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"carpool_api/internal/config"
	"carpool_api/internal/middleware"
	"carpool_api/internal/models"
)

type signupInput struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	IsDriver    bool   `json:"is_driver"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user and logs them in. The insert runs in its own
// transaction so a duplicate username or email leaves no partial row.
func Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Username:    input.Username,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsDriver:    input.IsDriver,
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		writeSaveError(c, err, "Username or email already exists")
		return
	}
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	setPrincipal(c, user.ID, "user")
	c.JSON(http.StatusCreated, user)
}

// Login authenticates against the admins table first, then users. An admin
// row with a matching username always wins over a user with the same name.
func Login(c *gin.Context) {
	var body loginInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	err := config.DB.Where("username = ?", body.Username).First(&admin).Error
	if err == nil {
		if !admin.Authenticate(body.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		setPrincipal(c, admin.ID, "admin")
		c.JSON(http.StatusOK, admin)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", body.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}
	if !user.Authenticate(body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	setPrincipal(c, user.ID, "user")
	c.JSON(http.StatusOK, user)
}

// Logout drops any principal from the session. Succeeds whether or not
// anyone was logged in.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warn("could not clear session")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CheckSession returns the profile of the session's principal, or 401 if
// there is no session or the principal row has since been deleted.
func CheckSession(c *gin.Context) {
	session := sessions.Default(c)
	id, ok := session.Get(middleware.SessionPrincipalID).(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	kind, _ := session.Get(middleware.SessionPrincipalKind).(string)

	if kind == "admin" {
		var admin models.Admin
		if err := config.DB.First(&admin, id).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, admin)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func setPrincipal(c *gin.Context, id uint, kind string) {
	session := sessions.Default(c)
	session.Set(middleware.SessionPrincipalID, id)
	session.Set(middleware.SessionPrincipalKind, kind)
	if err := session.Save(); err != nil {
		logrus.WithError(err).Error("could not save session")
	}
}
