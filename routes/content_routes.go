package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

func SetupContentRoutes(public *gin.RouterGroup, contentController *controllers.ContentController) {
	blogs := public.Group("/blogs")
	{
		blogs.GET("", contentController.ListBlogs)
		blogs.GET("/:slug", contentController.GetBlogBySlug)
	}

	partners := public.Group("/partners")
	{
		partners.GET("", contentController.ListPartners)
		partners.GET("/:slug", contentController.GetPartnerBySlug)
	}

	about := public.Group("/about-posts")
	{
		about.GET("", contentController.ListAboutPosts)
		about.GET("/:slug", contentController.GetAboutPostBySlug)
	}
}

func SetupProtectedContentRoutes(protected *gin.RouterGroup, contentController *controllers.ContentController) {
	blogs := protected.Group("/blogs")
	{
		blogs.POST("", contentController.CreateBlog)
		blogs.PUT("/:id", contentController.UpdateBlog)
	}

	partners := protected.Group("/partners")
	{
		partners.POST("", contentController.CreatePartner)
		partners.PUT("/:id", contentController.UpdatePartner)
	}

	about := protected.Group("/about-posts")
	{
		about.POST("", contentController.CreateAboutPost)
		about.PUT("/:id", contentController.UpdateAboutPost)
	}
}
