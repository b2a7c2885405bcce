package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mapsearch/api-go/controllers"
)

// About post comments accept anonymous authors; blog and partner comments
// require an account.
func SetupCommentRoutes(optional *gin.RouterGroup, commentController *controllers.CommentController) {
	optional.POST("/about-posts/:id/comments", commentController.SubmitAboutComment)
	optional.POST("/about-comments/replies", commentController.SubmitAboutCommentReply)
	optional.POST("/comments/engagement", commentController.UpdateEngagement)
}

func SetupProtectedCommentRoutes(protected *gin.RouterGroup, commentController *controllers.CommentController) {
	protected.POST("/blogs/:id/comments", commentController.SubmitBlogComment)
	protected.POST("/blog-comments/replies", commentController.SubmitBlogCommentReply)
	protected.POST("/partners/:id/comments", commentController.SubmitPartnerComment)
	protected.POST("/partner-comments/replies", commentController.SubmitPartnerCommentReply)
}
