package controllers

import (
	"log"

	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

// POST /api/admin/upload-image (multipart, field "image")
func (ctl *UploadController) UploadImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "No file uploaded")
		return
	}
	defer file.Close()

	imageURL, err := ctl.Uploads.UploadImage(c.Request.Context(), file)
	if err != nil {
		log.Printf("upload failed: %v", err)
		resp.ServerError(c, "Upload failed")
		return
	}
	resp.Created(c, gin.H{"imageUrl": imageURL})
}
