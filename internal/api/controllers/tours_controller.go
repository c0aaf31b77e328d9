package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"herbverse/internal/models/request_models"
	"herbverse/internal/services"
	"herbverse/pkg/middleware"
	"herbverse/pkg/utils"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{
		tourService: tourService,
	}
}

// ListTours godoc
// @Summary List virtual tours
// @Description Tours come back with their plants populated in tour order
// @Tags Tours
// @Produce json
// @Param theme query string false "Exact theme filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/tours [get]
func (t *ToursController) ListTours(c *gin.Context) {
	tours, err := t.tourService.List(c.Request.Context(), c.Query("theme"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tours fetched successfully")
}

// GetTourById godoc
// @Summary Get a virtual tour
// @Tags Tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/tours/{id} [get]
func (t *ToursController) GetTourById(c *gin.Context) {
	tour, err := t.tourService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour fetched successfully")
}

// CreateTour godoc
// @Summary Create a virtual tour
// @Tags Tours
// @Accept json
// @Produce json
// @Param request body request_models.CreateTourRequest true "Tour payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/tours [post]
func (t *ToursController) CreateTour(c *gin.Context) {
	var req request_models.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tour, err := t.tourService.Create(c.Request.Context(), req, middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, tour, "Tour created successfully")
}

// UpdateTour godoc
// @Summary Update a virtual tour
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body request_models.UpdateTourRequest true "Partial tour payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/tours/{id} [put]
func (t *ToursController) UpdateTour(c *gin.Context) {
	var req request_models.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tour, err := t.tourService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour updated successfully")
}

// DeleteTour godoc
// @Summary Delete a virtual tour
// @Tags Tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/tours/{id} [delete]
func (t *ToursController) DeleteTour(c *gin.Context) {
	if err := t.tourService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Tour deleted")
}
