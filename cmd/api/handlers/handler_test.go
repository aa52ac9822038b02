package handlers

import (
	"encoding/json"
	"testing"

	"videotube/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, c *app.RequestContext) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(c.Response.Body(), &resp))
	return resp
}

func TestSendResponseBindErrorIsBadRequest(t *testing.T) {
	c := app.NewContext(0)

	// Malformed request input wrapped as a parameter error must surface
	// as 400, never as an internal error.
	bindErr := errors.New("'sortBy' field unbindable")
	SendResponse(c, errno.ParamErr.WithMessage(bindErr.Error()), nil)

	assert.Equal(t, 400, c.Response.StatusCode())
	resp := decodeEnvelope(t, c)
	assert.Equal(t, int64(400), resp.StatusCode)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "sortBy")
}

func TestSendResponseUnknownErrorIsInternal(t *testing.T) {
	c := app.NewContext(0)
	SendResponse(c, errors.New("connection reset"), nil)

	assert.Equal(t, 500, c.Response.StatusCode())
	resp := decodeEnvelope(t, c)
	assert.False(t, resp.Success)
}

func TestSendResponseNilErrorIsOK(t *testing.T) {
	c := app.NewContext(0)
	SendResponse(c, nil, map[string]int{"n": 1})

	assert.Equal(t, 200, c.Response.StatusCode())
	resp := decodeEnvelope(t, c)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(200), resp.StatusCode)
}
