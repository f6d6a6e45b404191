package handlers

import (
	"errors"
	"net/http"

	"placehub/models"
	"placehub/services/workshop"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// WorkshopSvc is wired at startup.
var WorkshopSvc workshop.WorkshopService

// CreateWorkshop adds a workshop (admin only).
func CreateWorkshop(c *gin.Context) {
	var w models.Workshop
	if err := c.ShouldBindJSON(&w); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := WorkshopSvc.CreateWorkshop(c.Request.Context(), &w)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetWorkshop fetches one workshop by id.
func GetWorkshop(c *gin.Context) {
	w, err := WorkshopSvc.GetWorkshop(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// GetWorkshopByLink fetches a workshop by its public link slug.
func GetWorkshopByLink(c *gin.Context) {
	link := "/workshops/" + c.Param("slug")
	w, err := WorkshopSvc.GetWorkshopByLink(c.Request.Context(), link)
	if err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// ListWorkshops returns all workshops.
func ListWorkshops(c *gin.Context) {
	workshops, err := WorkshopSvc.ListWorkshops(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch workshops", err)
		return
	}
	c.JSON(http.StatusOK, workshops)
}

// UpdateWorkshop replaces a workshop's details (admin only).
func UpdateWorkshop(c *gin.Context) {
	var w models.Workshop
	if err := c.ShouldBindJSON(&w); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	w.ID = c.Param("id")

	updated, err := WorkshopSvc.UpdateWorkshop(c.Request.Context(), &w)
	if err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteWorkshop removes a workshop (admin only).
func DeleteWorkshop(c *gin.Context) {
	if err := WorkshopSvc.DeleteWorkshop(c.Request.Context(), c.Param("id")); err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workshop deleted successfully"})
}

// RegisterParticipant signs an attendee up for a workshop and opens the
// payment flow for their chosen plan.
func RegisterParticipant(c *gin.Context) {
	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.WorkshopID == "" {
		req.WorkshopID = c.Param("id")
	}

	resp, err := WorkshopSvc.RegisterParticipant(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, workshop.ErrWorkshopNotFound):
			utils.JSONError(c, http.StatusNotFound, "Workshop not found")
		case errors.Is(err, workshop.ErrAlreadyRegistered):
			utils.JSONError(c, http.StatusConflict, "This email is already registered for the workshop")
		case errors.Is(err, workshop.ErrInvalidPlan):
			utils.JSONError(c, http.StatusBadRequest, "Invalid payment plan")
		default:
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ConfirmRegistration marks a participant's payment as completed (admin only).
func ConfirmRegistration(c *gin.Context) {
	p, err := WorkshopSvc.ConfirmRegistration(c.Request.Context(), c.Param("id"), c.Param("participantId"))
	if err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// RemoveParticipant drops an attendee from a workshop (admin only).
func RemoveParticipant(c *gin.Context) {
	if err := WorkshopSvc.RemoveParticipant(c.Request.Context(), c.Param("id"), c.Param("participantId")); err != nil {
		handleWorkshopError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant removed successfully"})
}

func handleWorkshopError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workshop.ErrWorkshopNotFound):
		utils.JSONError(c, http.StatusNotFound, "Workshop not found")
	case errors.Is(err, workshop.ErrParticipantNotFound):
		utils.JSONError(c, http.StatusNotFound, "Participant not found")
	default:
		utils.JSONServerError(c, "Failed to process workshop request", err)
	}
}
