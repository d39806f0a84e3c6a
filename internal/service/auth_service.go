package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/d60-Lab/gin-news/internal/auth"
	"github.com/d60-Lab/gin-news/internal/model"
	"github.com/d60-Lab/gin-news/internal/repository"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrWrongPassword   = errors.New("wrong password")
)

// AuthService 注册与登录
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// Authenticate 同名用户取第一条
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService 创建注册登录服务
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, Email: email, Password: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidUsername
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}
