package jwt

import (
	"context"
	"time"

	"videotube/config"
	"videotube/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	hzjwt "github.com/hertz-contrib/jwt"
)

// IdentityKey is the access-token claim carrying the subject id.
const IdentityKey = "user_id"

var mw *hzjwt.HertzJWTMiddleware

// Init builds the JWT middleware from config. Must run before the router
// registers any protected route.
func Init() error {
	var err error
	mw, err = hzjwt.New(&hzjwt.HertzJWTMiddleware{
		Realm:       "videotube",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     time.Duration(config.ConfigInfo.Jwt.AccessExpireMin) * time.Minute,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) hzjwt.MapClaims {
			if userId, ok := data.(int64); ok {
				return hzjwt.MapClaims{IdentityKey: userId}
			}
			return hzjwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hzjwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"statusCode": errno.TokenInvalidCode,
				"data":       nil,
				"message":    message,
				"success":    false,
			})
		},
		TokenLookup:   "header: Authorization, cookie: accessToken",
		TokenHeadName: "Bearer",
	})
	return err
}

// AuthMiddleware guards a route group; requests without a valid access
// token never reach the handler.
func AuthMiddleware() app.HandlerFunc {
	return mw.MiddlewareFunc()
}

// GenerateAccessToken signs a token for the given subject.
func GenerateAccessToken(userId int64) (string, time.Time, error) {
	return mw.TokenGenerator(userId)
}

// CurrentUserId returns the authenticated subject of this request. A
// missing identity is an error, never a default: handlers must not
// attribute edges or mutations to a zero user.
//
// On routes behind AuthMiddleware the claims are already extracted. On
// public routes the middleware never ran, so a presented bearer token is
// parsed directly; optional-identity callers ignore the error.
func CurrentUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	if id, ok := subjectOf(hzjwt.ExtractClaims(ctx, c)); ok {
		return id, nil
	}
	if mw != nil {
		if claims, err := mw.GetClaimsFromJWT(ctx, c); err == nil {
			if id, ok := subjectOf(claims); ok {
				return id, nil
			}
		}
	}
	return 0, errno.TokenInvalidErr
}

func subjectOf(claims hzjwt.MapClaims) (int64, bool) {
	switch v := claims[IdentityKey].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}
