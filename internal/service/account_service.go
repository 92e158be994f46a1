package service

import (
	"context"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/events"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Cleanup steps of a user deletion, in execution order.
const (
	StepAdminLogs = "admin_logs"
	StepProfile   = "profile"
	StepAuthUser  = "auth_user"
)

type IAccountService interface {
	// DeleteUser removes the user's admin logs, profile and auth user in one
	// transaction. performedBy is uuid.Nil when no admin triggered it.
	DeleteUser(ctx context.Context, userId, performedBy uuid.UUID) ([]dto.DeleteUserStep, error)
}

type accountService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	audit      IAuditRecorder
	logger     logger.ILogger
}

func NewAccountService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, audit IAuditRecorder, logger logger.ILogger) IAccountService {
	return &accountService{
		uowFactory: uowFactory,
		publisher:  publisher,
		audit:      audit,
		logger:     logger,
	}
}

func (s *accountService) DeleteUser(ctx context.Context, userId, performedBy uuid.UUID) ([]dto.DeleteUserStep, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, &StepError{Step: "begin", Err: err}
	}
	defer uow.Rollback()

	steps := []struct {
		name string
		run  func() (int64, error)
	}{
		{StepAdminLogs, func() (int64, error) { return uow.AdminLogRepository().DeleteByPerformer(ctx, userId) }},
		{StepProfile, func() (int64, error) { return uow.ProfileRepository().Delete(ctx, userId) }},
		// zero rows means the auth store never knew the user, which still counts as deleted
		{StepAuthUser, func() (int64, error) { return uow.AuthUserRepository().Delete(ctx, userId) }},
	}

	done := make([]dto.DeleteUserStep, 0, len(steps))
	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			s.logger.Error("ACCOUNT", "User deletion step failed", map[string]interface{}{
				"error":   err.Error(),
				"step":    step.name,
				"user_id": userId.String(),
			})
			return done, &StepError{Step: step.name, Err: err}
		}
		done = append(done, dto.DeleteUserStep{Name: step.name, Deleted: n})
	}

	if err := uow.Commit(); err != nil {
		return done, &StepError{Step: "commit", Err: err}
	}

	s.logger.Info("ACCOUNT", "User deleted", map[string]interface{}{
		"user_id":      userId.String(),
		"performed_by": performedBy.String(),
	})

	if performedBy != uuid.Nil {
		s.audit.Record(ctx, ActionUserDelete, performedBy, userId.String(), map[string]interface{}{
			"steps": done,
		})
	}
	s.publisher.PublishUserDeleted(ctx, userId, performedBy)

	return done, nil
}
