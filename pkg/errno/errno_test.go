package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErr(t *testing.T) {
	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, Success, ConvertErr(nil))
	})

	t.Run("errno passes through", func(t *testing.T) {
		e := ConvertErr(NotFoundErr.WithMessage("video not found"))
		assert.Equal(t, int64(NotFoundCode), e.ErrCode)
		assert.Equal(t, "video not found", e.ErrMsg)
	})

	t.Run("wrapped errno is unwrapped", func(t *testing.T) {
		err := errors.WithMessage(ConflictErr, "create like failed")
		assert.Equal(t, int64(ConflictCode), ConvertErr(err).ErrCode)
	})

	t.Run("record not found maps to 404", func(t *testing.T) {
		assert.Equal(t, int64(NotFoundCode), ConvertErr(gorm.ErrRecordNotFound).ErrCode)
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		e := ConvertErr(errors.New("dial tcp: connection refused"))
		assert.Equal(t, int64(ServiceErrCode), e.ErrCode)
		assert.Equal(t, "dial tcp: connection refused", e.ErrMsg)
	})
}

func TestErrNoIs(t *testing.T) {
	reworded := ConflictErr.WithMessage("subscription already exists")
	assert.True(t, errors.Is(reworded, ConflictErr))
	assert.True(t, errors.Is(errors.WithMessage(reworded, "toggle failed"), ConflictErr))
	assert.False(t, errors.Is(reworded, NotFoundErr))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, NotFoundErr.HTTPStatus())
	assert.Equal(t, 500, ServiceErr.HTTPStatus())
	// Duplicate edges surface as plain validation failures on the wire.
	assert.Equal(t, 400, ConflictErr.HTTPStatus())
}
