package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController) {
	profile := protected.Group("/profile")
	{
		profile.GET("/reviews", profileController.GetMyReviews)
		profile.GET("/replies", profileController.GetMyReplies)
		profile.GET("/favorites", profileController.ListFavorites)
		profile.DELETE("/reviews/:id", profileController.DeleteMyReview)
	}
}
