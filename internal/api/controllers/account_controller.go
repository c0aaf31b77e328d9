package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"herbverse/internal/models/request_models"
	"herbverse/internal/services"
	"herbverse/pkg/middleware"
	"herbverse/pkg/utils"
)

type AccountController struct {
	accountService         services.AccountServiceInterface
	personalizationService services.PersonalizationServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface, personalizationService services.PersonalizationServiceInterface) *AccountController {
	return &AccountController{
		accountService:         accountService,
		personalizationService: personalizationService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user account and return it with a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Login successful")
}

// Me godoc
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/me [get]
func (a *AccountController) Me(c *gin.Context) {
	account, err := a.accountService.Me(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// GetData godoc
// @Summary Bookmarks and notes
// @Description Returns the caller's bookmarked plants and notes with plants resolved
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/data [get]
func (a *AccountController) GetData(c *gin.Context) {
	data, err := a.personalizationService.GetPersonalization(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, data, "User data fetched successfully")
}

// AddBookmark godoc
// @Summary Bookmark a plant
// @Tags Auth
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/bookmark/{plantId} [post]
func (a *AccountController) AddBookmark(c *gin.Context) {
	a.setBookmark(c, true)
}

// RemoveBookmark godoc
// @Summary Remove a bookmark
// @Tags Auth
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/bookmark/{plantId} [delete]
func (a *AccountController) RemoveBookmark(c *gin.Context) {
	a.setBookmark(c, false)
}

func (a *AccountController) setBookmark(c *gin.Context, add bool) {
	bookmarks, err := a.personalizationService.SetBookmark(c.Request.Context(), middleware.CurrentUserID(c), c.Param("plantId"), add)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookmarks, "Bookmarks updated")
}

// SaveNote godoc
// @Summary Save a note on a plant
// @Description Creates or replaces the caller's note for the plant
// @Tags Auth
// @Accept json
// @Produce json
// @Param plantId path string true "Plant ID"
// @Param request body request_models.NoteRequest true "Note payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/note/{plantId} [post]
func (a *AccountController) SaveNote(c *gin.Context) {
	var req request_models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Note text is required")
		return
	}

	notes, err := a.personalizationService.SaveNote(c.Request.Context(), middleware.CurrentUserID(c), c.Param("plantId"), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notes, "Note saved")
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags Auth
// @Produce json
// @Param plantId path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/auth/note/{plantId} [delete]
func (a *AccountController) DeleteNote(c *gin.Context) {
	notes, err := a.personalizationService.DeleteNote(c.Request.Context(), middleware.CurrentUserID(c), c.Param("plantId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notes, "Note deleted")
}
