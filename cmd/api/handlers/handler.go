package handlers

import (
	"os"
	"path/filepath"

	"videotube/pkg/errno"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Response is the uniform envelope. StatusCode mirrors the HTTP status so
// clients can branch without reading headers; Success is statusCode < 400.
type Response struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// SendResponse packs err and data into the envelope. A nil err means
// 200 OK with the default success message.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	e := errno.ConvertErr(err)
	status := e.HTTPStatus()
	c.JSON(status, Response{
		StatusCode: int64(status),
		Data:       data,
		Message:    e.ErrMsg,
		Success:    status < 400,
	})
}

// SendSuccess emits a success envelope with a custom message and status,
// for created resources and the like.
func SendSuccess(c *app.RequestContext, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		StatusCode: int64(statusCode),
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// SendCreated is SendSuccess with 201.
func SendCreated(c *app.RequestContext, message string, data interface{}) {
	SendSuccess(c, consts.StatusCreated, message, data)
}

// SaveTempFile spills the named multipart file to a temp path for the
// upload pipeline to read. ok is false when the field was not sent.
// Callers are expected to remove the file when they are done with it.
func SaveTempFile(c *app.RequestContext, field string) (string, bool, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	dst := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return "", false, errors.WithMessage(err, "save uploaded file failed")
	}
	return dst, true, nil
}
