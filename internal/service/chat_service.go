package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/events"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/unitofwork"
	"roofing-site-be/pkg/admin/mapper"
	"roofing-site-be/pkg/chatbot"
	"roofing-site-be/pkg/llm"
	"roofing-site-be/pkg/store"

	"github.com/google/uuid"
)

const (
	ReplySourceRule      = "rule"
	ReplySourceAssistant = "assistant"
)

type IChatService interface {
	StartConversation(ctx context.Context) (*dto.StartConversationResponse, error)
	SendMessage(ctx context.Context, threadId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	UpdateContactDetails(ctx context.Context, threadId string, req *dto.UpdateChatContactRequest) (*dto.ConversationResponse, error)
	Transcript(ctx context.Context, threadId string) ([]dto.ChatMessageResponse, error)

	ListConversations(ctx context.Context, req *dto.ListConversationsRequest) (*dto.PaginatedResponse[dto.ConversationResponse], error)
	GetConversation(ctx context.Context, id uuid.UUID) (*dto.ConversationDetailResponse, error)
	SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error
	Delete(ctx context.Context, adminId, id uuid.UUID) error

	ListForEmail(ctx context.Context, email string) ([]dto.ConversationResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	assistant  llm.Assistant
	rules      *chatbot.Engine
	threads    store.ThreadCache
	publisher  events.Publisher
	feed       LiveFeed
	audit      IAuditRecorder
	logger     logger.ILogger
	greeting   string
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	assistant llm.Assistant,
	rules *chatbot.Engine,
	threads store.ThreadCache,
	publisher events.Publisher,
	feed LiveFeed,
	audit IAuditRecorder,
	logger logger.ILogger,
	greeting string,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		assistant:  assistant,
		rules:      rules,
		threads:    threads,
		publisher:  publisher,
		feed:       feedOrNoop(feed),
		audit:      audit,
		logger:     logger,
		greeting:   greeting,
	}
}

func (s *chatService) StartConversation(ctx context.Context) (*dto.StartConversationResponse, error) {
	threadId, err := s.assistant.NewThread(ctx)
	if err != nil {
		s.logger.Error("CHAT", "Failed to create assistant thread", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("create thread: %w", errors.Join(ErrAssistantUnavailable, err))
	}

	conversation := &entity.ChatConversation{
		Id:       uuid.New(),
		ThreadId: threadId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatConversationRepository().Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	s.threads.Set(ctx, threadId, conversation.Id)

	s.logger.Info("CHAT", "Conversation started", map[string]interface{}{
		"conversation_id": conversation.Id.String(),
		"thread_id":       threadId,
	})

	s.publisher.PublishChatStarted(ctx, conversation.Id, threadId)
	s.feed.Publish(FeedChatStarted, mapper.ConversationToResponse(conversation))

	return &dto.StartConversationResponse{
		ThreadId:       threadId,
		ConversationId: conversation.Id,
		Greeting:       s.greeting,
	}, nil
}

// resolve finds the conversation behind a thread id, consulting the cache first.
func (s *chatService) resolve(ctx context.Context, uow unitofwork.UnitOfWork, threadId string) (*entity.ChatConversation, error) {
	if id, ok := s.threads.Get(ctx, threadId); ok {
		conversation, err := uow.ChatConversationRepository().FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if conversation != nil && conversation.ThreadId == threadId {
			return conversation, nil
		}
		s.threads.Delete(ctx, threadId)
	}

	conversation, err := uow.ChatConversationRepository().FindByThreadID(ctx, threadId)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, fmt.Errorf("thread %s: %w", threadId, ErrNotFound)
	}
	s.threads.Set(ctx, threadId, conversation.Id)
	return conversation, nil
}

func toHistory(messages []*entity.ChatMessage) []llm.Message {
	history := make([]llm.Message, 0, len(messages))
	for _, m := range messages {
		role := llm.RoleUser
		if m.Sender == entity.ChatSenderAssistant {
			role = llm.RoleAssistant
		}
		history = append(history, llm.Message{Role: role, Content: m.Content})
	}
	return history
}

func (s *chatService) SendMessage(ctx context.Context, threadId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	text := strings.TrimSpace(req.Message)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := s.resolve(ctx, uow, threadId)
	if err != nil {
		return nil, err
	}

	previous, err := uow.ChatMessageRepository().ListByConversation(ctx, conversation.Id)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}

	userMessage := &entity.ChatMessage{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.ChatSenderUser,
		Content:        text,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	source := ReplySourceRule
	var replyText string
	if rule, ok := s.rules.Match(text); ok {
		replyText = rule.Reply
		s.logger.Debug("CHAT", "Answered by rule", map[string]interface{}{"rule": rule.Name, "thread_id": threadId})
	} else {
		source = ReplySourceAssistant
		replyText, err = s.assistant.Reply(ctx, threadId, toHistory(previous), text)
		if err != nil {
			s.logger.Error("CHAT", "Assistant reply failed", map[string]interface{}{
				"error":     err.Error(),
				"thread_id": threadId,
			})
			return nil, fmt.Errorf("assistant reply: %w", errors.Join(ErrAssistantUnavailable, err))
		}
	}

	reply := &entity.ChatMessage{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.ChatSenderAssistant,
		Content:        replyText,
	}
	if err := uow.ChatMessageRepository().Create(ctx, reply); err != nil {
		return nil, fmt.Errorf("save assistant message: %w", err)
	}

	s.feed.Publish(FeedChatMessage, map[string]interface{}{
		"conversation_id": conversation.Id,
		"thread_id":       threadId,
		"message":         text,
		"reply":           replyText,
		"source":          source,
	})

	return &dto.SendMessageResponse{
		ThreadId: threadId,
		Reply:    mapper.MessageToResponse(reply),
		Source:   source,
	}, nil
}

// trimmedOrNil keeps the existing value when the field is absent and clears it on "".
func trimmedOrNil(value *string, current *string) *string {
	if value == nil {
		return current
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}
	return &v
}

func (s *chatService) UpdateContactDetails(ctx context.Context, threadId string, req *dto.UpdateChatContactRequest) (*dto.ConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := s.resolve(ctx, uow, threadId)
	if err != nil {
		return nil, err
	}

	conversation.UserName = trimmedOrNil(req.Name, conversation.UserName)
	conversation.UserPhone = trimmedOrNil(req.Phone, conversation.UserPhone)
	conversation.UserEmail = trimmedOrNil(req.Email, conversation.UserEmail)
	if conversation.UserEmail != nil {
		lowered := strings.ToLower(*conversation.UserEmail)
		conversation.UserEmail = &lowered
	}

	if err := uow.ChatConversationRepository().Update(ctx, conversation); err != nil {
		return nil, fmt.Errorf("update conversation: %w", err)
	}

	res := mapper.ConversationToResponse(conversation)
	return &res, nil
}

func (s *chatService) Transcript(ctx context.Context, threadId string) ([]dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := s.resolve(ctx, uow, threadId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().ListByConversation(ctx, conversation.Id)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	return mapper.MessagesToResponse(messages), nil
}

func (s *chatService) ListConversations(ctx context.Context, req *dto.ListConversationsRequest) (*dto.PaginatedResponse[dto.ConversationResponse], error) {
	page, limit, offset := paginate(req.Page, req.Limit)
	filter := contract.ConversationFilter{
		Contacted: contactedFilter(req.Contacted),
		Limit:     limit,
		Offset:    offset,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ChatConversationRepository().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	total, err := uow.ChatConversationRepository().Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count conversations: %w", err)
	}

	return newPage(mapper.ConversationsToResponse(items), page, limit, total), nil
}

func (s *chatService) GetConversation(ctx context.Context, id uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ChatConversationRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}

	messages, err := uow.ChatMessageRepository().ListByConversation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}

	return &dto.ConversationDetailResponse{
		ConversationResponse: mapper.ConversationToResponse(conversation),
		Messages:             mapper.MessagesToResponse(messages),
	}, nil
}

func (s *chatService) SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ChatConversationRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if conversation == nil {
		return fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}

	if err := uow.ChatConversationRepository().SetContacted(ctx, id, contacted); err != nil {
		return fmt.Errorf("update conversation: %w", err)
	}

	action := ActionChatMarkContacted
	if !contacted {
		action = ActionChatMarkUncontacted
	}
	s.audit.Record(ctx, action, adminId, id.String(), map[string]interface{}{
		"thread_id": conversation.ThreadId,
		"contacted": contacted,
	})
	return nil
}

func (s *chatService) Delete(ctx context.Context, adminId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversation, err := uow.ChatConversationRepository().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if conversation == nil {
		return fmt.Errorf("conversation %s: %w", id, ErrNotFound)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByConversation(ctx, id); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	if err := uow.ChatConversationRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.threads.Delete(ctx, conversation.ThreadId)
	s.audit.Record(ctx, ActionChatDelete, adminId, id.String(), map[string]interface{}{
		"thread_id": conversation.ThreadId,
	})
	return nil
}

func (s *chatService) ListForEmail(ctx context.Context, email string) ([]dto.ConversationResponse, error) {
	// an empty email would disable the filter and list everyone's rows
	if strings.TrimSpace(email) == "" {
		return []dto.ConversationResponse{}, nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.ChatConversationRepository().List(ctx, contract.ConversationFilter{Email: email})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return mapper.ConversationsToResponse(items), nil
}
