package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"herbverse/internal/models/request_models"
	"herbverse/internal/services"
	"herbverse/pkg/middleware"
	"herbverse/pkg/utils"
)

type PlantsController struct {
	plantService services.PlantServiceInterface
}

func NewPlantsController(plantService services.PlantServiceInterface) *PlantsController {
	return &PlantsController{
		plantService: plantService,
	}
}

// ListPlants godoc
// @Summary List plants
// @Tags Plants
// @Produce json
// @Param family query string false "Exact family filter"
// @Success 200 {object} utils.APIResponse
// @Router /api/plants [get]
func (p *PlantsController) ListPlants(c *gin.Context) {
	plants, err := p.plantService.List(c.Request.Context(), c.Query("family"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plants, "Plants fetched successfully")
}

// GetPlantById godoc
// @Summary Get a plant
// @Tags Plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/plants/{id} [get]
func (p *PlantsController) GetPlantById(c *gin.Context) {
	plant, err := p.plantService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant fetched successfully")
}

// CreatePlant godoc
// @Summary Create a plant
// @Tags Plants
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlantRequest true "Plant payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plants [post]
func (p *PlantsController) CreatePlant(c *gin.Context) {
	var req request_models.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plant, err := p.plantService.Create(c.Request.Context(), req, middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plant, "Plant created successfully")
}

// UpdatePlant godoc
// @Summary Update a plant
// @Description Fields left out of the payload keep their stored value
// @Tags Plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body request_models.UpdatePlantRequest true "Partial plant payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plants/{id} [put]
func (p *PlantsController) UpdatePlant(c *gin.Context) {
	var req request_models.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plant, err := p.plantService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plant, "Plant updated successfully")
}

// DeletePlant godoc
// @Summary Delete a plant
// @Tags Plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/plants/{id} [delete]
func (p *PlantsController) DeletePlant(c *gin.Context) {
	if err := p.plantService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plant deleted")
}
