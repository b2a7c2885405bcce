package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupPlaceRoutes(public *gin.RouterGroup, placeController *controllers.PlaceController) {
	places := public.Group("/places")
	{
		places.GET("/:placeId", placeController.GetPlaceDetails)
	}
}
