package handlers

import (
	"net/http"

	"placehub/middleware"
	"placehub/models"
	"placehub/services/feedback"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackSvc is wired at startup.
var FeedbackSvc feedback.FeedbackService

// AddFeedback records a mentor's assessment of a student (mentor only).
func AddFeedback(c *gin.Context) {
	var fb models.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	fb.MentorID = c.GetString(middleware.ContextUserID)

	created, err := FeedbackSvc.AddFeedback(c.Request.Context(), &fb)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListStudentFeedback returns a student's feedback, newest first.
func ListStudentFeedback(c *gin.Context) {
	items, err := FeedbackSvc.ListByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch feedback", err)
		return
	}
	c.JSON(http.StatusOK, items)
}
