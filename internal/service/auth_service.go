package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/pkg/serverutils"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/pkg/admin/mapper"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTL time.Duration, logger logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.AuthUserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	authUser := &entity.AuthUser{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		Id:       authUser.Id,
		FullName: strings.TrimSpace(req.FullName),
		Role:     entity.UserRoleUser,
		Email:    email,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AuthUserRepository().Create(ctx, authUser); err != nil {
		return nil, err
	}
	if err := uow.ProfileRepository().Create(ctx, profile); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"user_id": authUser.Id.String()})

	return &dto.RegisterResponse{Id: authUser.Id, Email: email}, nil
}

func (s *authService) authenticate(ctx context.Context, req *dto.LoginRequest) (*entity.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	authUser, err := uow.AuthUserRepository().FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if authUser == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(authUser.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := uow.ProfileRepository().FindByID(ctx, authUser.Id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// credentials without a profile cannot sign in
		return nil, ErrInvalidCredentials
	}
	return profile, nil
}

func (s *authService) issue(profile *entity.Profile) (*dto.LoginResponse, error) {
	token, err := serverutils.IssueToken(s.jwtSecret, profile.Id, string(profile.Role), s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		User:        mapper.ProfileToResponse(profile),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issue(profile)
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	profile, err := s.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if profile.Role != entity.UserRoleAdmin {
		s.logger.Warn("AUTH", "Non-admin attempted admin login", map[string]interface{}{"user_id": profile.Id.String()})
		return nil, errors.Join(ErrForbidden, errors.New("admin access required"))
	}
	return s.issue(profile)
}
