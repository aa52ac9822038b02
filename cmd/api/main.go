package main

import (
	"context"
	"fmt"

	interactiondb "videotube/cmd/interaction/dal/db"
	playlistdb "videotube/cmd/playlist/dal/db"
	relationdb "videotube/cmd/relation/dal/db"
	tweetdb "videotube/cmd/tweet/dal/db"
	userdb "videotube/cmd/user/dal/db"
	videodb "videotube/cmd/video/dal/db"

	"videotube/cmd/api/router"
	"videotube/config"
	"videotube/pkg/cache"
	"videotube/pkg/constants"
	"videotube/pkg/database"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/oss"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()
	database.Init()

	userdb.Init(database.DB)
	videodb.Init(database.DB)
	interactiondb.Init(database.DB)
	relationdb.Init(database.DB)
	playlistdb.Init(database.DB)
	tweetdb.Init(database.DB)

	cache.Init()
	if err := oss.Init(); err != nil {
		logrus.Fatalf("object storage init failed: %v", err)
	}
	if err := jwt.Init(); err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}
}

func main() {
	Init()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(constants.MaxUploadSize),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"statusCode": errno.ServiceErrCode,
				"message":    fmt.Sprintf("internal error: %v", err),
				"success":    false,
			})
		})))

	router.Register(r)

	r.Spin()
}
