package service

import (
	"context"
	"fmt"

	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ColumnPatch struct {
	Table      string
	Column     string
	Definition string
}

// RequiredColumns lists the columns older databases may be missing.
var RequiredColumns = []ColumnPatch{
	{"chat_conversations", "user_name", "VARCHAR(255)"},
	{"chat_conversations", "user_email", "VARCHAR(255)"},
	{"chat_conversations", "user_phone", "VARCHAR(50)"},
	{"chat_conversations", "contacted", "BOOLEAN NOT NULL DEFAULT FALSE"},
	{"contact_submissions", "contacted", "BOOLEAN NOT NULL DEFAULT FALSE"},
	{"contact_submissions", "consent", "BOOLEAN NOT NULL DEFAULT FALSE"},
}

type ISchemaService interface {
	// Patch adds whichever RequiredColumns are missing and returns them per table.
	Patch(ctx context.Context, performedBy uuid.UUID) (map[string][]string, error)
}

type schemaService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      IAuditRecorder
	logger     logger.ILogger
}

// NewSchemaService accepts a nil audit recorder for the CLI.
func NewSchemaService(uowFactory unitofwork.RepositoryFactory, audit IAuditRecorder, logger logger.ILogger) ISchemaService {
	return &schemaService{
		uowFactory: uowFactory,
		audit:      audit,
		logger:     logger,
	}
}

func (s *schemaService) Patch(ctx context.Context, performedBy uuid.UUID) (map[string][]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	added := map[string][]string{}
	for _, patch := range RequiredColumns {
		exists, err := uow.SchemaRepository().HasColumn(ctx, patch.Table, patch.Column)
		if err != nil {
			return nil, fmt.Errorf("inspect %s.%s: %w", patch.Table, patch.Column, err)
		}
		if exists {
			continue
		}
		if err := uow.SchemaRepository().AddColumn(ctx, patch.Table, patch.Column, patch.Definition); err != nil {
			return nil, fmt.Errorf("add %s.%s: %w", patch.Table, patch.Column, err)
		}
		added[patch.Table] = append(added[patch.Table], patch.Column)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("SCHEMA", "Schema patch applied", map[string]interface{}{"added": added})

	if len(added) > 0 && s.audit != nil && performedBy != uuid.Nil {
		s.audit.Record(ctx, ActionSchemaPatch, performedBy, "schema", map[string]interface{}{"added": added})
	}
	return added, nil
}
