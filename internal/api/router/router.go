package router

import (
	"vidnest-go/internal/api/handler"
	"vidnest-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	videoHandler *handler.VideoHandler,
	playlistHandler *handler.PlaylistHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	searchHandler *handler.SearchHandler,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", middleware.AuthRequired())
		{
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- 用户模块（公开接口） ---
	users := v1.Group("/users")
	{
		users.GET("/:id", userHandler.GetProfile)
		users.GET("/:id/playlists", playlistHandler.ListUserPlaylists)
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		// 匿名可访问，带 token 时解析出访问者身份
		videosPublic := videos.Group("", middleware.AuthOptional())
		{
			videosPublic.GET("/feed", videoHandler.Feed)
			videosPublic.GET("/:id", videoHandler.Detail)
			videosPublic.GET("/:id/comments", commentHandler.ListByVideo)
		}

		videosAuth := videos.Group("", middleware.AuthRequired())
		{
			videosAuth.GET("/my/list", videoHandler.MyVideos)
			videosAuth.POST("/:id/comments", commentHandler.Create)
		}
	}

	// --- 播放列表模块 ---
	playlists := v1.Group("/playlists")
	{
		playlistsPublic := playlists.Group("", middleware.AuthOptional())
		{
			playlistsPublic.GET("/:id", playlistHandler.GetByID)
		}

		playlistsAuth := playlists.Group("", middleware.AuthRequired())
		{
			playlistsAuth.POST("", playlistHandler.Create)
			playlistsAuth.PUT("/:id", playlistHandler.Update)
			playlistsAuth.DELETE("/:id", playlistHandler.Delete)
			playlistsAuth.POST("/:id/videos/:video_id", playlistHandler.AddVideo)
			playlistsAuth.DELETE("/:id/videos/:video_id", playlistHandler.RemoveVideo)
			playlistsAuth.GET("/my/list", playlistHandler.ListMyPlaylists)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments", middleware.AuthRequired())
	{
		comments.PUT("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)
		comments.POST("/:id/like", likeHandler.ToggleCommentLike)
	}

	// --- 搜索模块（公开接口） ---
	search := v1.Group("/search")
	{
		search.GET("/videos", searchHandler.SearchVideos)
	}
}
