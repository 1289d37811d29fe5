package services

import (
	"context"
	"strings"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/auth"
	"internship_backend/internal/email"
	"internship_backend/internal/models"
	"internship_backend/internal/repositories"
	"internship_backend/internal/services/dto"
	"internship_backend/internal/token"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *token.Service
	notifier email.Notifier
}

func NewAuthService(userRepo repositories.UserRepository, tokens *token.Service, notifier email.Notifier) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
	}
}

// Register creates an account and issues a token. Emails are stored
// lower-cased so uniqueness is case-insensitive. The welcome mail is a
// side channel: its failure never fails registration.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleStudent
	}
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, apperrors.InternalError(err)
	}

	tokenStr, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.SendWelcome(ctx, user.Email, user.Name, string(user.Role))

	return &dto.AuthResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Token:     tokenStr,
		IsNewUser: true,
	}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password remain distinguishable responses, matching the public
// contract.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokenStr, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifier.SendLoginAlert(ctx, user.Email, user.Name)

	return &dto.AuthResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Token:     tokenStr,
		IsNewUser: false,
	}, nil
}
