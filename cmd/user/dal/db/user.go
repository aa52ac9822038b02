package db

import (
	"context"
	"time"

	"videotube/cmd/model"
	"videotube/pkg/database"
	"videotube/pkg/errno"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return errno.ConflictErr.WithMessage("username or email already exists")
		}
		return errors.WithMessage(err, "create user failed")
	}
	return nil
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	user := new(model.User)
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "get user failed")
	}
	return user, nil
}

func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := new(model.User)
	if err := DB.WithContext(ctx).Where("username = ?", username).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "get user failed")
	}
	return user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := new(model.User)
	if err := DB.WithContext(ctx).Where("email = ?", email).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errors.WithMessage(err, "get user failed")
	}
	return user, nil
}

// GetUserByRefreshToken resolves a refresh token to its user. Expired
// tokens look the same as unknown ones to the caller.
func GetUserByRefreshToken(ctx context.Context, token string) (*model.User, error) {
	user := new(model.User)
	if err := DB.WithContext(ctx).
		Where("refresh_token = ? AND refresh_expires_at > ?", token, time.Now()).
		First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.TokenInvalidErr.WithMessage("refresh token invalid or expired")
		}
		return nil, errors.WithMessage(err, "get user failed")
	}
	return user, nil
}

// UpdateRefreshToken stores the rotated token and its expiry. Both
// columns are written in one statement; a zero expiresAt with an empty
// token revokes the session.
func UpdateRefreshToken(ctx context.Context, userId int64, token string, expiresAt time.Time) error {
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).
		Updates(map[string]interface{}{
			"refresh_token":      token,
			"refresh_expires_at": expiresAt,
		}).Error; err != nil {
		return errors.WithMessage(err, "update refresh token failed")
	}
	return nil
}

func UserExists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "check user failed")
	}
	return count > 0, nil
}
