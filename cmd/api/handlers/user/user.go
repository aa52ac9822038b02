package handlers

import (
	"context"
	"os"

	base "videotube/cmd/api/handlers"
	"videotube/cmd/user/service"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/oss"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
)

// Register creates an account. Avatar and cover image arrive as optional
// multipart files and are pushed to object storage before the row is
// written.
func Register(ctx context.Context, c *app.RequestContext) {
	var req RegisterParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	avatar, err := uploadOptionalImage(ctx, c, "avatar")
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	coverImage, err := uploadOptionalImage(ctx, c, "coverImage")
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}

	user, err := service.NewUserService(ctx).Register(ctx, &service.RegisterRequest{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Avatar:     avatar,
		CoverImage: coverImage,
	})
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	base.SendCreated(c, "user registered successfully", user)
}

func Login(ctx context.Context, c *app.RequestContext) {
	var req LoginParam
	if err := c.Bind(&req); err != nil {
		base.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, tokens, err := service.NewUserService(ctx).Login(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	setAuthCookies(c, tokens)
	base.SendResponse(c, nil, map[string]interface{}{
		"user":         user,
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
	})
}

// RefreshToken rotates the session. The token is read from the body
// first, falling back to the cookie.
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req RefreshTokenParam
	_ = c.Bind(&req)
	token := req.RefreshToken
	if token == "" {
		token = string(c.Cookie("refreshToken"))
	}

	tokens, err := service.NewUserService(ctx).RefreshToken(ctx, token)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	setAuthCookies(c, tokens)
	base.SendResponse(c, nil, tokens)
}

func Logout(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	if err := service.NewUserService(ctx).Logout(ctx, userId); err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	c.SetCookie("accessToken", "", -1, "/", "", protocol.CookieSameSiteLaxMode, true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", protocol.CookieSameSiteLaxMode, true, true)
	base.SendResponse(c, nil, nil)
}

func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.CurrentUserId(ctx, c)
	if err != nil {
		base.SendResponse(c, err, nil)
		return
	}
	user, err := service.NewUserService(ctx).GetCurrentUser(ctx, userId)
	base.SendResponse(c, err, user)
}

// GetChannelProfile serves the public channel page. The requester id is
// optional; anonymous requests see isSubscribed=false.
func GetChannelProfile(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	if username == "" {
		base.SendResponse(c, errno.ParamErr.WithMessage("username is required"), nil)
		return
	}
	requesterId, _ := jwt.CurrentUserId(ctx, c)

	profile, err := service.NewUserService(ctx).GetChannelProfile(ctx, username, requesterId)
	base.SendResponse(c, err, profile)
}

func uploadOptionalImage(ctx context.Context, c *app.RequestContext, field string) (string, error) {
	path, ok, err := base.SaveTempFile(c, field)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	defer os.Remove(path)
	return oss.UploadImage(ctx, path)
}

func setAuthCookies(c *app.RequestContext, tokens *service.TokenPair) {
	c.SetCookie("accessToken", tokens.AccessToken, 0, "/", "", protocol.CookieSameSiteLaxMode, true, true)
	c.SetCookie("refreshToken", tokens.RefreshToken, 0, "/", "", protocol.CookieSameSiteLaxMode, true, true)
}
