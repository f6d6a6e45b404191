package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"placehub/middleware"
	"placehub/models"
	"placehub/services/schedule"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleInterview books a mock interview at a published slot.
func ScheduleInterview(c *gin.Context) {
	var req models.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required")
		return
	}
	// The authenticated caller owns the booking.
	req.UserID = c.GetString(middleware.ContextUserID)

	iv, err := ScheduleSvc.ScheduleInterview(c.Request.Context(), req)
	if err != nil {
		handleInterviewError(c, err)
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// GetInterview fetches one interview by id.
func GetInterview(c *gin.Context) {
	iv, err := ScheduleSvc.GetInterview(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleInterviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// ListInterviews returns one page of interviews, newest first.
func ListInterviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ScheduleSvc.ListInterviews(c.Request.Context(), page, limit)
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch interviews", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListMyInterviews returns the authenticated caller's bookings.
func ListMyInterviews(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	interviews, err := ScheduleSvc.ListInterviewsByOwner(c.Request.Context(), userID)
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch interviews", err)
		return
	}
	c.JSON(http.StatusOK, interviews)
}

// UpdateInterview applies a partial update to a booking.
func UpdateInterview(c *gin.Context) {
	var patch models.InterviewPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	iv, err := ScheduleSvc.UpdateInterview(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		handleInterviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// DeleteInterview cancels a booking, freeing its slot.
func DeleteInterview(c *gin.Context) {
	if err := ScheduleSvc.DeleteInterview(c.Request.Context(), c.Param("id")); err != nil {
		handleInterviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted successfully"})
}

func handleInterviewError(c *gin.Context, err error) {
	switch {
	case schedule.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrTimeNotAvailable):
		utils.JSONError(c, http.StatusBadRequest, "Selected time slot is not available")
	case errors.Is(err, schedule.ErrSlotTaken):
		utils.JSONError(c, http.StatusBadRequest, "Slot already booked, choose a different time")
	case errors.Is(err, schedule.ErrInterviewNotFound):
		utils.JSONError(c, http.StatusNotFound, "Interview not found")
	default:
		utils.JSONServerError(c, "Failed to process interview request", err)
	}
}
