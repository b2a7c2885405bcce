package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupLocationRoutes(public *gin.RouterGroup, locationController *controllers.LocationController) {
	locations := public.Group("/locations")
	{
		locations.GET("/search", locationController.SearchLocations)
		locations.GET("/:id", locationController.GetLocation)
	}

	public.GET("/categories", locationController.ListCategories)
	public.GET("/amenities", locationController.ListAmenities)
}
