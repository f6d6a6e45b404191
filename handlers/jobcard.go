package handlers

import (
	"errors"
	"net/http"

	"placehub/models"
	"placehub/services/jobcard"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// JobCardSvc is wired at startup.
var JobCardSvc jobcard.JobCardService

// CreateJobCard stores a placement progress card for a student (admin only).
func CreateJobCard(c *gin.Context) {
	var card models.JobCard
	if err := c.ShouldBindJSON(&card); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := JobCardSvc.CreateCard(c.Request.Context(), &card)
	if err != nil {
		if errors.Is(err, jobcard.ErrCardExists) {
			utils.JSONError(c, http.StatusConflict, "A job card already exists for this student")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetJobCard fetches a student's card joined with their profile.
func GetJobCard(c *gin.Context) {
	card, err := JobCardSvc.GetCardByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		handleJobCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// ListJobCards returns every card joined with its owner's profile.
func ListJobCards(c *gin.Context) {
	cards, err := JobCardSvc.ListCards(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch job cards", err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// UpdateJobCard replaces a student's card fields (admin only).
func UpdateJobCard(c *gin.Context) {
	var card models.JobCard
	if err := c.ShouldBindJSON(&card); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	card.StudentID = c.Param("studentId")

	updated, err := JobCardSvc.UpdateCardByStudent(c.Request.Context(), &card)
	if err != nil {
		handleJobCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJobCard removes a student's card (admin only).
func DeleteJobCard(c *gin.Context) {
	if err := JobCardSvc.DeleteCardByStudent(c.Request.Context(), c.Param("studentId")); err != nil {
		handleJobCardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job card deleted successfully"})
}

func handleJobCardError(c *gin.Context, err error) {
	if errors.Is(err, jobcard.ErrCardNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Job card not found")
		return
	}
	utils.JSONServerError(c, "Failed to process job card request", err)
}
