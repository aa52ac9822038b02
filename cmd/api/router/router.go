package router

import (
	base "videotube/cmd/api/handlers"
	comment "videotube/cmd/api/handlers/comment"
	dashboard "videotube/cmd/api/handlers/dashboard"
	like "videotube/cmd/api/handlers/like"
	playlist "videotube/cmd/api/handlers/playlist"
	subscription "videotube/cmd/api/handlers/subscription"
	tweet "videotube/cmd/api/handlers/tweet"
	user "videotube/cmd/api/handlers/user"
	video "videotube/cmd/api/handlers/video"
	"videotube/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires the /api/v1 surface. Register, login, refresh, the
// healthcheck and the public read endpoints stay outside the auth
// middleware; everything else requires a valid token.
func Register(r *server.Hertz) {
	v1 := r.Group("/api/v1")

	v1.GET("/healthcheck", base.Healthcheck)

	users := v1.Group("/users")
	users.POST("/register", user.Register)
	users.POST("/login", user.Login)
	users.POST("/refresh-token", user.RefreshToken)
	users.GET("/c/:username", user.GetChannelProfile)

	usersAuth := v1.Group("/users", jwt.AuthMiddleware())
	usersAuth.POST("/logout", user.Logout)
	usersAuth.GET("/current-user", user.GetCurrentUser)

	videos := v1.Group("/videos")
	videos.GET("", video.ListVideos)
	videos.GET("/:videoId", video.GetVideoById)

	videosAuth := v1.Group("/videos", jwt.AuthMiddleware())
	videosAuth.POST("", video.PublishVideo)
	videosAuth.PATCH("/:videoId", video.UpdateVideo)
	videosAuth.DELETE("/:videoId", video.DeleteVideo)
	videosAuth.PATCH("/toggle/publish/:videoId", video.TogglePublishStatus)

	comments := v1.Group("/comments")
	comments.GET("/:videoId", comment.ListVideoComments)

	commentsAuth := v1.Group("/comments", jwt.AuthMiddleware())
	commentsAuth.POST("/:videoId", comment.AddComment)
	commentsAuth.PATCH("/c/:commentId", comment.UpdateComment)
	commentsAuth.DELETE("/c/:commentId", comment.DeleteComment)

	likes := v1.Group("/likes", jwt.AuthMiddleware())
	likes.POST("/toggle/v/:videoId", like.ToggleVideoLike)
	likes.POST("/toggle/c/:commentId", like.ToggleCommentLike)
	likes.POST("/toggle/t/:tweetId", like.ToggleTweetLike)
	likes.GET("/videos", like.GetLikedVideos)

	subs := v1.Group("/subscriptions", jwt.AuthMiddleware())
	subs.POST("/c/:channelId", subscription.ToggleSubscription)
	subs.GET("/c/subscribers/:channelId", subscription.GetChannelSubscribers)
	subs.GET("/u/subscribed-channels/:subscriberId", subscription.GetSubscribedChannels)

	playlists := v1.Group("/playlists")
	playlists.GET("/:playlistId", playlist.GetPlaylistById)
	playlists.GET("/user/:userId", playlist.GetUserPlaylists)

	playlistsAuth := v1.Group("/playlists", jwt.AuthMiddleware())
	playlistsAuth.POST("", playlist.CreatePlaylist)
	playlistsAuth.PATCH("/add/:videoId/:playlistId", playlist.AddVideoToPlaylist)
	playlistsAuth.PATCH("/remove/:videoId/:playlistId", playlist.RemoveVideoFromPlaylist)
	playlistsAuth.PATCH("/:playlistId", playlist.UpdatePlaylist)
	playlistsAuth.DELETE("/:playlistId", playlist.DeletePlaylist)

	tweets := v1.Group("/tweets")
	tweets.GET("/user/:userId", tweet.GetUserTweets)

	tweetsAuth := v1.Group("/tweets", jwt.AuthMiddleware())
	tweetsAuth.POST("", tweet.CreateTweet)
	tweetsAuth.PATCH("/:tweetId", tweet.UpdateTweet)
	tweetsAuth.DELETE("/:tweetId", tweet.DeleteTweet)

	dash := v1.Group("/dashboard", jwt.AuthMiddleware())
	dash.GET("/stats", dashboard.GetChannelStats)
	dash.GET("/videos", dashboard.GetChannelVideos)
}
