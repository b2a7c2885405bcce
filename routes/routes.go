package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/config"
	"github.com/mapsearch/api-go/controllers"
	"github.com/mapsearch/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupRoutesWithPlaces(r, db, config.NewPlacesClient())
}

// SetupRoutesWithPlaces wires the full route table with an injectable places
// client. Tests pass nil so nothing reaches out to Google.
func SetupRoutesWithPlaces(r *gin.Engine, db *gorm.DB, places *config.PlacesClient) {
	// Initialize controllers
	uploadController := controllers.NewUploadController(db)
	authController := controllers.NewAuthController(db, uploadController)
	locationController := controllers.NewLocationController(db)
	placeController := controllers.NewPlaceController(db, places)
	reviewController := controllers.NewReviewController(db, places)
	contentController := controllers.NewContentController(db)
	commentController := controllers.NewCommentController(db)
	donationController := controllers.NewDonationController(db)
	contactController := controllers.NewContactController(db)
	profileController := controllers.NewProfileController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/register/check-email", authController.RegisterEmailCheck)
		public.POST("/register/check-username", authController.RegisterUsernameCheck)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleLogin)
		public.POST("/logout", authController.Logout)
		public.POST("/refresh-token", authController.RefreshToken)

		SetupLocationRoutes(public, locationController)
		SetupPlaceRoutes(public, placeController)
		SetupDonationRoutes(public, donationController, contactController)
		SetupContentRoutes(public, contentController)
	}

	// Anonymous submissions carry author fields; signed-in users get theirs
	// from the token when one is present.
	optional := r.Group("/api")
	optional.Use(middleware.OptionalAuthMiddleware())
	{
		SetupReviewRoutes(optional, reviewController)
		SetupCommentRoutes(optional, commentController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupProtectedContentRoutes(protected, contentController)
		SetupProtectedCommentRoutes(protected, commentController)
		SetupProfileRoutes(protected, profileController)
		SetupUploadRoutes(protected, uploadController)
	}

	// Avatar staging happens before an account exists.
	public.POST("/uploads/avatar/temp-url", uploadController.GetAvatarTempURL)
	public.DELETE("/uploads/avatar/temp/:tempKey", uploadController.CleanupTempAvatar)
}
