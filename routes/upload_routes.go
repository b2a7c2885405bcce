package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := protected.Group("/uploads")
	{
		upload.POST("/avatar/confirm", uploadController.ConfirmAvatarUpload)
		upload.POST("/post-image", uploadController.UploadPostImage)
	}
}
