package service

import (
	"context"
	"errors"
	"fmt"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/pkg/admin/dashboard"
	"roofing-site-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IAdminService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error)

	ListUsers(ctx context.Context, req *dto.ListUsersRequest) (*dto.PaginatedResponse[dto.ProfileResponse], error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	UpdateRole(ctx context.Context, adminId, id uuid.UUID, role string) (*dto.ProfileResponse, error)
	DeleteUser(ctx context.Context, adminId, id uuid.UUID) ([]dto.DeleteUserStep, error)

	ListAdminLogs(ctx context.Context, req *dto.ListAdminLogsRequest) (*dto.PaginatedResponse[dto.AdminLogResponse], error)
	SystemLogs(ctx context.Context, req *dto.ListSystemLogsRequest) ([]dto.SystemLogResponse, error)
	SystemLogDetail(ctx context.Context, id string) (*dto.SystemLogResponse, error)
}

type adminService struct {
	uowFactory unitofwork.RepositoryFactory
	aggregator *dashboard.Aggregator
	account    IAccountService
	feed       LiveFeed
	audit      IAuditRecorder
	logger     logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	account IAccountService,
	feed LiveFeed,
	audit IAuditRecorder,
	logger logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory: uowFactory,
		aggregator: dashboard.NewAggregator(),
		account:    account,
		feed:       feedOrNoop(feed),
		audit:      audit,
		logger:     logger,
	}
}

func (s *adminService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats, err := s.aggregator.GetStats(ctx, s.uowFactory.NewUnitOfWork(ctx))
	if err != nil {
		return nil, err
	}
	stats.LiveFeedConnections = s.feed.ClientCount()
	return stats, nil
}

func (s *adminService) ListUsers(ctx context.Context, req *dto.ListUsersRequest) (*dto.PaginatedResponse[dto.ProfileResponse], error) {
	page, limit, offset := paginate(req.Page, req.Limit)
	filter := contract.ProfileFilter{
		Query:  req.Q,
		Role:   req.Role,
		Limit:  limit,
		Offset: offset,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ProfileRepository().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := uow.ProfileRepository().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return newPage(mapper.ProfilesToResponse(items), page, limit, total), nil
}

func (s *adminService) GetUser(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	res := mapper.ProfileToResponse(profile)
	return &res, nil
}

func (s *adminService) UpdateRole(ctx context.Context, adminId, id uuid.UUID, role string) (*dto.ProfileResponse, error) {
	newRole := entity.UserRole(role)
	if !newRole.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if adminId == id && newRole != entity.UserRoleAdmin {
		return nil, errors.Join(ErrForbidden, errors.New("admins cannot demote themselves"))
	}

	previous := profile.Role
	if previous != newRole {
		profile.Role = newRole
		if err := uow.ProfileRepository().Update(ctx, profile); err != nil {
			return nil, err
		}
		s.audit.Record(ctx, ActionUserUpdateRole, adminId, id.String(), map[string]interface{}{
			"from": string(previous),
			"to":   string(newRole),
		})
	}

	res := mapper.ProfileToResponse(profile)
	return &res, nil
}

func (s *adminService) DeleteUser(ctx context.Context, adminId, id uuid.UUID) ([]dto.DeleteUserStep, error) {
	if adminId == id {
		return nil, errors.Join(ErrForbidden, errors.New("admins cannot delete themselves"))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	return s.account.DeleteUser(ctx, id, adminId)
}

func (s *adminService) ListAdminLogs(ctx context.Context, req *dto.ListAdminLogsRequest) (*dto.PaginatedResponse[dto.AdminLogResponse], error) {
	page, limit, offset := paginate(req.Page, req.Limit)
	filter := contract.AdminLogFilter{
		Action: req.Action,
		Limit:  limit,
		Offset: offset,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.AdminLogRepository().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list admin logs: %w", err)
	}
	total, err := uow.AdminLogRepository().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count admin logs: %w", err)
	}

	return newPage(mapper.AdminLogsToResponse(items), page, limit, total), nil
}

func (s *adminService) SystemLogs(_ context.Context, req *dto.ListSystemLogsRequest) ([]dto.SystemLogResponse, error) {
	_, limit, offset := paginate(req.Page, req.Limit)
	entries, err := s.logger.GetLogs(req.Level, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("read system logs: %w", err)
	}

	res := make([]dto.SystemLogResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, mapper.LogEntryToResponse(e))
	}
	return res, nil
}

func (s *adminService) SystemLogDetail(_ context.Context, id string) (*dto.SystemLogResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, fmt.Errorf("log %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	res := mapper.LogEntryToResponse(*entry)
	return &res, nil
}
