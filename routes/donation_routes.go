package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupDonationRoutes(public *gin.RouterGroup, donationController *controllers.DonationController, contactController *controllers.ContactController) {
	donations := public.Group("/donations")
	{
		donations.GET("/campaigns", donationController.ListCampaigns)
		donations.POST("", donationController.SubmitDonation)
	}

	public.POST("/contact", contactController.SubmitMessage)
}
