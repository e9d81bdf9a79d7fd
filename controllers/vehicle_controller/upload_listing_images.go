package vehicle_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/services"
	"github.com/gin-gonic/gin"
)

const maxListingImages = 6

// UploadListingImages godoc
// @Summary Upload listing photos
// @Description Upload up to 6 photos for a listing; returns their CDN URLs for use in the listing payload
// @Tags Vehicles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Listing photos (repeatable)"
// @Success 200 {object} models.ApiResponse "urls"
// @Failure 400 {object} models.ApiResponse "No files or too many files"
// @Failure 500 {object} models.ApiResponse "Upload failed"
// @Router /vehicles/user-listing/images [post]
func UploadListingImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one image is required"))
		return
	}
	if len(files) > maxListingImages {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A listing can carry at most 6 photos"))
		return
	}

	cld, err := services.NewCloudinaryService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("[vehicle.upload-images] cloudinary init failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image storage unavailable"))
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	folder := "vahan-bazar/listings/" + userID

	ctx, cancel := config.WithCustomTimeout(uploadTimeout)
	defer cancel()

	urls, err := cld.UploadMultipleImages(ctx, files, folder)
	if err != nil {
		log.Printf("[vehicle.upload-images] upload failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{"urls": urls}))
}
