package implementation

import (
	"context"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/mapper"
	"roofing-site-be/internal/model"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/scope"
	"roofing-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatMessageRepository(db *gorm.DB) contract.ChatMessageRepository {
	return &ChatMessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatMessageRepositoryImpl) Create(ctx context.Context, message *entity.ChatMessage) error {
	row := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(row)
	return nil
}

func (r *ChatMessageRepositoryImpl) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	var rows []*model.ChatMessage
	query := applySpecifications(
		r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc),
		specification.ByConversationID{ConversationID: conversationID},
	)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(rows), nil
}

func (r *ChatMessageRepositoryImpl) DeleteByConversation(ctx context.Context, conversationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Delete(&model.ChatMessage{}).Error
}

func (r *ChatMessageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ChatMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
