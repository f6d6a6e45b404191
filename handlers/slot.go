package handlers

import (
	"errors"
	"net/http"

	"placehub/services/schedule"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleSvc is wired at startup.
var ScheduleSvc schedule.ScheduleService

type slotInput struct {
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}

// AddSlots publishes time slots for a day, appending to any existing set.
func AddSlots(c *gin.Context) {
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Date and at least one time slot are required")
		return
	}

	slot, _, err := ScheduleSvc.AddSlots(c.Request.Context(), input.Date, input.TimeSlots)
	if err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ReplaceSlots overwrites the published set for a day.
func ReplaceSlots(c *gin.Context) {
	var input slotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Date and at least one time slot are required")
		return
	}

	slot, err := ScheduleSvc.ReplaceSlots(c.Request.Context(), c.Param("date"), input.TimeSlots)
	if err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// GetAllSlots lists every published day in date order.
func GetAllSlots(c *gin.Context) {
	slots, err := ScheduleSvc.GetAllSlots(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetSlotsByDate fetches the published set for one day.
func GetSlotsByDate(c *gin.Context) {
	slot, err := ScheduleSvc.GetSlotsByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlots removes the published set for one day.
func DeleteSlots(c *gin.Context) {
	if err := ScheduleSvc.DeleteSlots(c.Request.Context(), c.Param("date")); err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slots deleted successfully"})
}

// GetDayAvailability reports open times for one day.
func GetDayAvailability(c *gin.Context) {
	avail, err := ScheduleSvc.DayAvailability(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// GetWeekAvailability reports open times for the week containing
// ?weekStart= (today's week when absent).
func GetWeekAvailability(c *gin.Context) {
	week, err := ScheduleSvc.WeekAvailability(c.Request.Context(), c.Query("weekStart"))
	if err != nil {
		handleSlotError(c, err)
		return
	}
	c.JSON(http.StatusOK, week)
}

func handleSlotError(c *gin.Context, err error) {
	switch {
	case schedule.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrSlotConflict):
		utils.JSONError(c, http.StatusBadRequest, "One or more time slots already exist for this date")
	case errors.Is(err, schedule.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, "No available slot found for this date")
	default:
		utils.JSONServerError(c, "Failed to process slot request", err)
	}
}
