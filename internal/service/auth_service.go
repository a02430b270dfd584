package service

import (
	"errors"
	"fmt"

	"github.com/pollhive/backend/internal/dto"
	"github.com/pollhive/backend/internal/model"
	"github.com/pollhive/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(req dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Register: failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return s.tokenResponse(&user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return s.tokenResponse(user)
}

func (s *authService) tokenResponse(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("failed to generate token")
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &dto.TokenResponse{
		Token: token,
		User:  dto.UserDTO{ID: user.ID, Username: user.Username, Email: user.Email},
	}, nil
}
