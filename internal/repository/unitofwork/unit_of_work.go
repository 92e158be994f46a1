package unitofwork

import (
	"context"

	"roofing-site-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContactRepository() contract.ContactRepository
	ChatConversationRepository() contract.ChatConversationRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ProfileRepository() contract.ProfileRepository
	AuthUserRepository() contract.AuthUserRepository
	AdminLogRepository() contract.AdminLogRepository
	SchemaRepository() contract.SchemaRepository
}
