package handlers

import (
	"errors"
	"net/http"

	"placehub/models"
	"placehub/services/mentor"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// MentorSvc is wired at startup.
var MentorSvc mentor.MentorService

// CreateMentor adds a mentor profile (admin only).
func CreateMentor(c *gin.Context) {
	var m models.Mentor
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := MentorSvc.CreateMentor(c.Request.Context(), &m)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetMentor fetches one mentor profile.
func GetMentor(c *gin.Context) {
	m, err := MentorSvc.GetMentor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleMentorError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListMentors returns the active mentors shown on the public listing.
func ListMentors(c *gin.Context) {
	mentors, err := MentorSvc.ListActiveMentors(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch mentors", err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// UpdateMentor replaces a mentor profile (admin only).
func UpdateMentor(c *gin.Context) {
	var m models.Mentor
	if err := c.ShouldBindJSON(&m); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	m.ID = c.Param("id")

	updated, err := MentorSvc.UpdateMentor(c.Request.Context(), &m)
	if err != nil {
		handleMentorError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetMentorActive toggles a mentor's public visibility (admin only).
func SetMentorActive(c *gin.Context) {
	var input struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	m, err := MentorSvc.SetMentorActive(c.Request.Context(), c.Param("id"), input.IsActive)
	if err != nil {
		handleMentorError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMentor removes a mentor profile (admin only).
func DeleteMentor(c *gin.Context) {
	if err := MentorSvc.DeleteMentor(c.Request.Context(), c.Param("id")); err != nil {
		handleMentorError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mentor deleted successfully"})
}

func handleMentorError(c *gin.Context, err error) {
	if errors.Is(err, mentor.ErrMentorNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Mentor not found")
		return
	}
	utils.JSONServerError(c, "Failed to process mentor request", err)
}
