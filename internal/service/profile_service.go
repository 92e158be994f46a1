package service

import (
	"context"
	"fmt"
	"strings"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func (s *profileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", userId, ErrNotFound)
	}

	res := mapper.ProfileToResponse(profile)
	return &res, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", userId, ErrNotFound)
	}

	profile.FullName = strings.TrimSpace(req.FullName)

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			profile.Username = nil
		} else {
			owner, err := uow.ProfileRepository().FindByUsername(ctx, username)
			if err != nil {
				return nil, err
			}
			if owner != nil && owner.Id != profile.Id {
				return nil, fmt.Errorf("username %s: %w", username, ErrConflict)
			}
			profile.Username = &username
		}
	}

	if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
		return nil, err
	}

	res := mapper.ProfileToResponse(profile)
	return &res, nil
}
