package unitofwork

import (
	"context"
	"fmt"

	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // set between Begin and Commit/Rollback
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ContactRepository() contract.ContactRepository {
	return implementation.NewContactRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatConversationRepository() contract.ChatConversationRepository {
	return implementation.NewChatConversationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProfileRepository() contract.ProfileRepository {
	return implementation.NewProfileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuthUserRepository() contract.AuthUserRepository {
	return implementation.NewAuthUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AdminLogRepository() contract.AdminLogRepository {
	return implementation.NewAdminLogRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SchemaRepository() contract.SchemaRepository {
	return implementation.NewSchemaRepository(u.getDB())
}
