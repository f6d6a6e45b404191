package handlers

import (
	"errors"
	"net/http"

	"placehub/models"
	"placehub/services/jobrole"
	"placehub/utils"

	"github.com/gin-gonic/gin"
)

// JobRoleSvc is wired at startup.
var JobRoleSvc jobrole.JobRoleService

// CreateJobRole adds a role (admin only).
func CreateJobRole(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Role name is required")
		return
	}

	role, err := JobRoleSvc.CreateRole(c.Request.Context(), input.Name)
	if err != nil {
		if errors.Is(err, jobrole.ErrRoleExists) {
			utils.JSONError(c, http.StatusConflict, "A job role with this name already exists")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, role)
}

// ListJobRoles returns all roles sorted by name.
func ListJobRoles(c *gin.Context) {
	roles, err := JobRoleSvc.ListRoles(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch job roles", err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// DeleteJobRole removes a role and its template (admin only).
func DeleteJobRole(c *gin.Context) {
	if err := JobRoleSvc.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, jobrole.ErrRoleNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Job role not found")
			return
		}
		utils.JSONServerError(c, "Failed to delete job role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job role deleted successfully"})
}

// CreateTemplate attaches a progress template to a role (admin only).
func CreateTemplate(c *gin.Context) {
	var input struct {
		JobRoleID string                 `json:"jobRoleId"`
		Fields    []models.TemplateField `json:"fields"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tpl, err := JobRoleSvc.CreateTemplate(c.Request.Context(), input.JobRoleID, input.Fields)
	if err != nil {
		if errors.Is(err, jobrole.ErrTemplateExists) {
			utils.JSONError(c, http.StatusConflict, "A template already exists for this job role")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// ListTemplates returns all templates.
func ListTemplates(c *gin.Context) {
	templates, err := JobRoleSvc.ListTemplates(c.Request.Context())
	if err != nil {
		utils.JSONServerError(c, "Failed to fetch templates", err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetTemplateForRole fetches the template attached to a role.
func GetTemplateForRole(c *gin.Context) {
	tpl, err := JobRoleSvc.GetTemplateForRole(c.Request.Context(), c.Param("roleId"))
	if err != nil {
		handleTemplateError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// UpdateTemplate replaces a template's field list (admin only).
func UpdateTemplate(c *gin.Context) {
	var input struct {
		Fields []models.TemplateField `json:"fields"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	tpl, err := JobRoleSvc.UpdateTemplate(c.Request.Context(), c.Param("id"), input.Fields)
	if err != nil {
		handleTemplateError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate removes a template (admin only).
func DeleteTemplate(c *gin.Context) {
	if err := JobRoleSvc.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		handleTemplateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

func handleTemplateError(c *gin.Context, err error) {
	if errors.Is(err, jobrole.ErrTemplateNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Job role template not found")
		return
	}
	utils.JSONError(c, http.StatusBadRequest, err.Error())
}
