package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"herbverse/internal/models/request_models"
	"herbverse/internal/services"
	"herbverse/pkg/utils"
)

type AdminController struct {
	userAdminService services.UserAdminServiceInterface
}

func NewAdminController(userAdminService services.UserAdminServiceInterface) *AdminController {
	return &AdminController{
		userAdminService: userAdminService,
	}
}

// GetAllUsers godoc
// @Summary Get all accounts
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users [get]
func (a *AdminController) GetAllUsers(c *gin.Context) {
	users, err := a.userAdminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// UpdateUserRole godoc
// @Summary Change an account's role
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request_models.UpdateRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [put]
func (a *AdminController) UpdateUserRole(c *gin.Context) {
	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.userAdminService.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Role updated successfully")
}

// DeleteUser godoc
// @Summary Delete an account
// @Tags Admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/admin/users/{id} [delete]
func (a *AdminController) DeleteUser(c *gin.Context) {
	if err := a.userAdminService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted")
}
