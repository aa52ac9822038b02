package service

import (
	"context"
	"time"

	"videotube/cmd/model"
	relationdb "videotube/cmd/relation/dal/db"
	"videotube/cmd/user/dal/db"
	"videotube/config"
	"videotube/pkg/errno"
	"videotube/pkg/jwt"
	"videotube/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

type RegisterRequest struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     string
	CoverImage string
}

// TokenPair is an access token with its expiry plus the rotating refresh
// token persisted on the user row.
type TokenPair struct {
	AccessToken  string    `json:"accessToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	RefreshToken string    `json:"refreshToken"`
}

// ChannelProfile is the public channel page: user projection plus edge
// counts and the requester's subscription state.
type ChannelProfile struct {
	UserId           int64  `json:"userId"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Avatar           string `json:"avatar"`
	CoverImage       string `json:"coverImage"`
	SubscriberCount  int64  `json:"subscriberCount"`
	SubscribedToCnt  int64  `json:"channelsSubscribedTo"`
	IsSubscribed     bool   `json:"isSubscribed"`
}

func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	if req.Username == "" || req.Email == "" || req.FullName == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("username, email, fullName and password are required")
	}

	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "hash password failed")
	}
	user := &model.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
		Password:   hashed,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a fresh token pair. Either the
// username or the email identifies the account.
func (s *UserService) Login(ctx context.Context, username, email, password string) (*model.User, *TokenPair, error) {
	if username == "" && email == "" {
		return nil, nil, errno.ParamErr.WithMessage("username or email is required")
	}
	if password == "" {
		return nil, nil, errno.ParamErr.WithMessage("password is required")
	}

	var (
		user *model.User
		err  error
	)
	if username != "" {
		user, err = db.GetUserByUsername(ctx, username)
	} else {
		user, err = db.GetUserByEmail(ctx, email)
	}
	if err != nil {
		if errors.Is(err, errno.NotFoundErr) {
			return nil, nil, errno.NotFoundErr.WithMessage("user does not exist")
		}
		return nil, nil, err
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, nil, errno.TokenInvalidErr.WithMessage("invalid credentials")
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// RefreshToken rotates the refresh token: the presented token is spent,
// and a new pair is issued. An unknown token reads as invalid, not 404.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, errno.TokenInvalidErr.WithMessage("refresh token is required")
	}
	user, err := db.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *UserService) Logout(ctx context.Context, userId int64) error {
	return db.UpdateRefreshToken(ctx, userId, "", time.Time{})
}

// refreshExpiry computes when a refresh token issued now stops being
// accepted, from the configured lifetime in days.
func refreshExpiry(now time.Time) time.Time {
	return now.Add(time.Duration(config.ConfigInfo.Jwt.RefreshExpireDay) * 24 * time.Hour)
}

func (s *UserService) GetCurrentUser(ctx context.Context, userId int64) (*model.User, error) {
	return db.GetUserById(ctx, userId)
}

// GetChannelProfile builds the public channel page for a username. The
// requester id only feeds the isSubscribed flag; zero means anonymous.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, requesterId int64) (*ChannelProfile, error) {
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	subscribers, err := relationdb.CountSubscribers(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	subscribedTo, err := relationdb.CountSubscribedChannels(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	isSubscribed := false
	if requesterId > 0 {
		isSubscribed, err = relationdb.SubscriptionExists(ctx, requesterId, user.UserId)
		if err != nil {
			return nil, err
		}
	}

	return &ChannelProfile{
		UserId:          user.UserId,
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		Avatar:          user.Avatar,
		CoverImage:      user.CoverImage,
		SubscriberCount: subscribers,
		SubscribedToCnt: subscribedTo,
		IsSubscribed:    isSubscribed,
	}, nil
}

func (s *UserService) issueTokens(ctx context.Context, user *model.User) (*TokenPair, error) {
	access, expiresAt, err := jwt.GenerateAccessToken(user.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "generate access token failed")
	}
	refresh := uuid.NewString()
	if err := db.UpdateRefreshToken(ctx, user.UserId, refresh, refreshExpiry(time.Now())); err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		ExpiresAt:    expiresAt,
		RefreshToken: refresh,
	}, nil
}
