package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupReviewRoutes(optional *gin.RouterGroup, reviewController *controllers.ReviewController) {
	reviews := optional.Group("/reviews")
	{
		reviews.POST("", reviewController.SubmitReview)
		reviews.POST("/replies", reviewController.SubmitReply)
		reviews.PUT("/text", reviewController.UpdateText)
		reviews.POST("/engagement", reviewController.UpdateEngagement)
		reviews.GET("/place/:placeId", reviewController.GetPlaceReviews)
	}

	contributions := optional.Group("/contributions")
	{
		contributions.GET("/recent", reviewController.GetRecentContributions)
		contributions.GET("", reviewController.GetAllContributions)
	}
}
