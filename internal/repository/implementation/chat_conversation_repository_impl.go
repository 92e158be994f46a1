package implementation

import (
	"context"
	"errors"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/mapper"
	"roofing-site-be/internal/model"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/scope"
	"roofing-site-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatConversationRepository(db *gorm.DB) contract.ChatConversationRepository {
	return &ChatConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatConversationRepositoryImpl) filterSpecs(filter contract.ConversationFilter) []specification.Specification {
	var specs []specification.Specification
	if filter.Contacted != nil {
		specs = append(specs, specification.ContactedIs{Contacted: *filter.Contacted})
	}
	if filter.Email != "" {
		specs = append(specs, specification.ByUserEmail{Email: filter.Email})
	}
	return specs
}

func (r *ChatConversationRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversation, error) {
	var row model.ChatConversation
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&row), nil
}

func (r *ChatConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.ChatConversation) error {
	row := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(row)
	return nil
}

func (r *ChatConversationRepositoryImpl) Update(ctx context.Context, conversation *entity.ChatConversation) error {
	row := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(row)
	return nil
}

func (r *ChatConversationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ChatConversationRepositoryImpl) FindByThreadID(ctx context.Context, threadID string) (*entity.ChatConversation, error) {
	return r.findOne(ctx, specification.ByThreadID{ThreadID: threadID})
}

func (r *ChatConversationRepositoryImpl) List(ctx context.Context, filter contract.ConversationFilter) ([]*entity.ChatConversation, error) {
	var rows []*model.ChatConversation
	specs := append(r.filterSpecs(filter), specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ConversationsToEntities(rows), nil
}

func (r *ChatConversationRepositoryImpl) Count(ctx context.Context, filter contract.ConversationFilter) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatConversation{}), r.filterSpecs(filter)...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatConversationRepositoryImpl) SetContacted(ctx context.Context, id uuid.UUID, contacted bool) error {
	return r.db.WithContext(ctx).Model(&model.ChatConversation{}).
		Where("id = ?", id).
		Update("contacted", contacted).Error
}

func (r *ChatConversationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChatConversation{}).Error
}
