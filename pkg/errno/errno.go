package errno

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNo is the uniform error shape carried to the transport boundary.
// ErrCode doubles as the HTTP status of the response.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

// WithMessage keeps the code and replaces the message.
func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// Is lets errors.Is match two ErrNo values by code, so wrapped and
// re-worded errors still compare against the sentinels below.
func (e ErrNo) Is(target error) bool {
	var t ErrNo
	if errors.As(target, &t) {
		return e.ErrCode == t.ErrCode
	}
	return false
}

const (
	SuccessCode       = 200
	CreatedCode       = 201
	ParamErrCode      = 400
	TokenInvalidCode  = 401
	AuthorizationCode = 403
	NotFoundCode      = 404
	ConflictCode      = 409
	ServiceErrCode    = 500
)

var (
	Success = NewErrNo(SuccessCode, "success")

	ServiceErr       = NewErrNo(ServiceErrCode, "service internal error")
	ParamErr         = NewErrNo(ParamErrCode, "invalid parameter")
	TokenInvalidErr  = NewErrNo(TokenInvalidCode, "token invalid or expired")
	AuthorizationErr = NewErrNo(AuthorizationCode, "permission denied")
	NotFoundErr      = NewErrNo(NotFoundCode, "resource not found")

	// ConflictErr marks duplicate edges and duplicate memberships. Toggles
	// swallow it and converge; non-idempotent duplicates surface it to the
	// boundary, where it is reported as a 400.
	ConflictErr = NewErrNo(ConflictCode, "duplicate resource")

	// UpstreamErr marks a failed upload collaborator call, surfaced directly.
	UpstreamErr = NewErrNo(ParamErrCode, "upstream collaborator failed")
)

// HTTPStatus maps an ErrNo code to the response status. Conflicts are
// reported as plain validation failures on the wire.
func (e ErrNo) HTTPStatus() int {
	if e.ErrCode == ConflictCode {
		return ParamErrCode
	}
	return int(e.ErrCode)
}

// ConvertErr converts a plain error into ErrNo for the response envelope.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundErr
	}
	return ServiceErr.WithMessage(err.Error())
}
