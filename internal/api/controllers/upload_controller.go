package controllers

import (
	"github.com/gin-gonic/gin"
	"herbverse/internal/services"
	"herbverse/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload godoc
// @Summary Upload an image or GLB model
// @Description Accepts a single multipart field named file. Images land in /uploads/images, GLB models in /uploads/models
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image or model/gltf-binary file"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/upload [post]
func (u *UploadController) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.HandleServiceError(c, utils.ErrNoFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	defer file.Close()

	stored, err := u.uploadService.Accept(c.Request.Context(), file, header.Size, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stored, "File uploaded successfully")
}
