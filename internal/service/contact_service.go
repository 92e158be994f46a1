package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/events"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/pkg/mailer"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	List(ctx context.Context, req *dto.ListContactsRequest) (*dto.PaginatedResponse[dto.ContactResponse], error)
	SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error
	Delete(ctx context.Context, adminId, id uuid.UUID) error
	ListForEmail(ctx context.Context, email string) ([]dto.ContactResponse, error)
}

type contactService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	mailer     mailer.IEmailService
	feed       LiveFeed
	audit      IAuditRecorder
	logger     logger.ILogger
}

// NewContactService accepts a nil mailer when notifications are disabled.
func NewContactService(
	uowFactory unitofwork.RepositoryFactory,
	publisher events.Publisher,
	mailer mailer.IEmailService,
	feed LiveFeed,
	audit IAuditRecorder,
	logger logger.ILogger,
) IContactService {
	return &contactService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mailer:     mailer,
		feed:       feedOrNoop(feed),
		audit:      audit,
		logger:     logger,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	submission := &entity.ContactSubmission{
		Id:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
		Consent:   req.Consent,
		Contacted: false,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ContactRepository().Create(ctx, submission); err != nil {
		return nil, fmt.Errorf("save contact submission: %w", err)
	}

	s.logger.Info("CONTACT", "Contact submission received", map[string]interface{}{
		"contact_id": submission.Id.String(),
		"email":      submission.Email,
	})

	res := mapper.ContactToResponse(submission)

	// Side effects are best-effort.
	s.publisher.PublishContactSubmitted(ctx, submission.Id, submission.Name, submission.Email)
	s.feed.Publish(FeedContactSubmitted, res)
	if s.mailer != nil {
		notify := *submission
		go func() {
			if err := s.mailer.NotifyNewContact(&notify); err != nil {
				s.logger.Error("CONTACT", "Failed to send contact notification", map[string]interface{}{
					"error":      err.Error(),
					"contact_id": notify.Id.String(),
				})
			}
		}()
	}

	return &res, nil
}

func (s *contactService) List(ctx context.Context, req *dto.ListContactsRequest) (*dto.PaginatedResponse[dto.ContactResponse], error) {
	page, limit, offset := paginate(req.Page, req.Limit)
	filter := contract.ContactFilter{
		Contacted: contactedFilter(req.Contacted),
		Limit:     limit,
		Offset:    offset,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ContactRepository().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	total, err := uow.ContactRepository().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}

	return newPage(mapper.ContactsToResponse(items), page, limit, total), nil
}

func (s *contactService) SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ContactRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}

	if err := uow.ContactRepository().SetContacted(ctx, id, contacted); err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	action := ActionContactMarkContacted
	if !contacted {
		action = ActionContactMarkUncontacted
	}
	s.audit.Record(ctx, action, adminId, id.String(), map[string]interface{}{
		"email":     existing.Email,
		"contacted": contacted,
	})
	return nil
}

func (s *contactService) Delete(ctx context.Context, adminId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ContactRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}

	if err := uow.ContactRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.audit.Record(ctx, ActionContactDelete, adminId, id.String(), map[string]interface{}{
		"name":  existing.Name,
		"email": existing.Email,
	})
	return nil
}

func (s *contactService) ListForEmail(ctx context.Context, email string) ([]dto.ContactResponse, error) {
	// an empty email would disable the filter and list everyone's rows
	if strings.TrimSpace(email) == "" {
		return []dto.ContactResponse{}, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ContactRepository().List(ctx, contract.ContactFilter{Email: email})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return mapper.ContactsToResponse(items), nil
}
