package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
)

func Healthcheck(ctx context.Context, c *app.RequestContext) {
	SendResponse(c, nil, map[string]string{"status": "ok"})
}
