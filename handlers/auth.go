package handlers

import (
	"errors"
	"net/http"

	"placehub/middleware"
	"placehub/models"
	"placehub/services/user"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// UserSvc is wired at startup.
var UserSvc user.UserService

// Register creates a new account.
func Register(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if u.Name == "" || u.Email == "" || u.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	resp, err := UserSvc.Register(c.Request.Context(), &u)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "An account with this email already exists")
			return
		}
		utils.JSONServerError(c, "Failed to register", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login checks credentials and issues a token.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := UserSvc.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		utils.JSONServerError(c, "Failed to log in", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMyProfile returns the authenticated caller's account.
func GetMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	u, err := UserSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONServerError(c, "Failed to fetch profile", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMyProfile replaces the caller's mutable profile fields.
func UpdateMyProfile(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	u.ID = c.GetString(middleware.ContextUserID)

	updated, err := UserSvc.UpdateProfile(c.Request.Context(), &u)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONServerError(c, "Failed to update profile", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListUsers returns all accounts (admin only).
func ListUsers(c *gin.Context) {
	users, err := UserSvc.ListUsers(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes an account (admin only).
func DeleteUser(c *gin.Context) {
	if err := UserSvc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.JSONServerError(c, "Failed to delete user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
