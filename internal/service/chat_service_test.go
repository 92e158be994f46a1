package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/repository/memory"
	"roofing-site-be/pkg/chatbot"
	"roofing-site-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistant struct {
	mu        sync.Mutex
	threadErr error
	replyErr  error
	reply     string
	histories [][]llm.Message
	n         int
}

func (a *fakeAssistant) NewThread(context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.threadErr != nil {
		return "", a.threadErr
	}
	a.n++
	return "thread_" + uuid.NewString(), nil
}

func (a *fakeAssistant) Reply(_ context.Context, _ string, history []llm.Message, _ string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.histories = append(a.histories, history)
	if a.replyErr != nil {
		return "", a.replyErr
	}
	return a.reply, nil
}

type chatFixture struct {
	store     *memStore
	assistant *fakeAssistant
	threads   *memory.ThreadCache
	audit     *fakeAudit
	feed      *fakeFeed
	publisher *fakePublisher
	svc       IChatService
}

func newChatFixture(t *testing.T) *chatFixture {
	f := &chatFixture{
		store:     newMemStore(),
		assistant: &fakeAssistant{reply: "A shingle roof usually lasts 20 to 30 years."},
		threads:   memory.NewThreadCache(time.Hour),
		audit:     &fakeAudit{},
		feed:      &fakeFeed{},
		publisher: &fakePublisher{},
	}
	f.svc = NewChatService(
		&fakeFactory{f.store},
		f.assistant,
		chatbot.NewEngine(chatbot.DefaultRules()),
		f.threads,
		f.publisher,
		f.feed,
		f.audit,
		testLogger(t),
		"Hi! Ask us anything about your roof.",
	)
	return f
}

func (f *chatFixture) start(t *testing.T) *dto.StartConversationResponse {
	t.Helper()
	res, err := f.svc.StartConversation(context.Background())
	require.NoError(t, err)
	return res
}

func TestChatStartConversation(t *testing.T) {
	f := newChatFixture(t)
	res := f.start(t)

	assert.NotEmpty(t, res.ThreadId)
	assert.Equal(t, "Hi! Ask us anything about your roof.", res.Greeting)
	require.Contains(t, f.store.conversations, res.ConversationId)
	assert.Equal(t, res.ThreadId, f.store.conversations[res.ConversationId].ThreadId)

	cached, ok := f.threads.Get(context.Background(), res.ThreadId)
	assert.True(t, ok)
	assert.Equal(t, res.ConversationId, cached)

	assert.Equal(t, []string{"CHAT_STARTED"}, f.publisher.published())
	assert.Equal(t, []string{FeedChatStarted}, f.feed.types())
}

func TestChatStartConversationAssistantDown(t *testing.T) {
	f := newChatFixture(t)
	f.assistant.threadErr = errors.New("503")

	_, err := f.svc.StartConversation(context.Background())
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.Empty(t, f.store.conversations)
}

func TestChatSendMessageRuleReply(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)

	res, err := f.svc.SendMessage(context.Background(), started.ThreadId, &dto.SendMessageRequest{Message: "Hello there"})
	require.NoError(t, err)

	assert.Equal(t, ReplySourceRule, res.Source)
	assert.Equal(t, string(entity.ChatSenderAssistant), res.Reply.Sender)
	assert.Contains(t, res.Reply.Content, "How can we help")
	assert.Empty(t, f.assistant.histories, "rule replies never reach the assistant")
	assert.Len(t, f.store.messages, 2)
	assert.Contains(t, f.feed.types(), FeedChatMessage)
}

func TestChatSendMessageGreetingWithQuestionReachesAssistant(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)

	res, err := f.svc.SendMessage(context.Background(), started.ThreadId, &dto.SendMessageRequest{Message: "Hello, how long do asphalt shingles last?"})
	require.NoError(t, err)

	assert.Equal(t, ReplySourceAssistant, res.Source)
	assert.Equal(t, f.assistant.reply, res.Reply.Content)
	assert.Len(t, f.assistant.histories, 1)
}

func TestChatSendMessageAssistantReplyReplaysTranscript(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, started.ThreadId, &dto.SendMessageRequest{Message: "hi"})
	require.NoError(t, err)

	res, err := f.svc.SendMessage(ctx, started.ThreadId, &dto.SendMessageRequest{Message: "How long do asphalt shingles last?"})
	require.NoError(t, err)
	assert.Equal(t, ReplySourceAssistant, res.Source)
	assert.Equal(t, f.assistant.reply, res.Reply.Content)

	require.Len(t, f.assistant.histories, 1)
	history := f.assistant.histories[0]
	require.Len(t, history, 2)
	assert.Equal(t, llm.RoleUser, history[0].Role)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, llm.RoleAssistant, history[1].Role)

	transcript, err := f.svc.Transcript(ctx, started.ThreadId)
	require.NoError(t, err)
	require.Len(t, transcript, 4)
	assert.Equal(t, "hi", transcript[0].Content)
	assert.Equal(t, f.assistant.reply, transcript[3].Content)
}

func TestChatSendMessageAssistantFailure(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)
	f.assistant.replyErr = llm.ErrEmptyReply

	_, err := f.svc.SendMessage(context.Background(), started.ThreadId, &dto.SendMessageRequest{Message: "tell me about skylights"})
	assert.ErrorIs(t, err, ErrAssistantUnavailable)
	assert.ErrorIs(t, err, llm.ErrEmptyReply)
	assert.Len(t, f.store.messages, 1, "the visitor message is kept")
}

func TestChatUnknownThread(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()

	_, err := f.svc.SendMessage(ctx, "thread_missing", &dto.SendMessageRequest{Message: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Transcript(ctx, "thread_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateContactDetails(ctx, "thread_missing", &dto.UpdateChatContactRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChatResolveFallsBackToDatabase(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)
	ctx := context.Background()

	f.threads.Delete(ctx, started.ThreadId)
	_, err := f.svc.Transcript(ctx, started.ThreadId)
	require.NoError(t, err)

	cached, ok := f.threads.Get(ctx, started.ThreadId)
	assert.True(t, ok)
	assert.Equal(t, started.ConversationId, cached)

	// a stale cache entry pointing elsewhere is discarded
	f.threads.Set(ctx, started.ThreadId, uuid.New())
	_, err = f.svc.Transcript(ctx, started.ThreadId)
	require.NoError(t, err)
	cached, _ = f.threads.Get(ctx, started.ThreadId)
	assert.Equal(t, started.ConversationId, cached)
}

func TestChatUpdateContactDetails(t *testing.T) {
	f := newChatFixture(t)
	started := f.start(t)
	ctx := context.Background()

	res, err := f.svc.UpdateContactDetails(ctx, started.ThreadId, &dto.UpdateChatContactRequest{
		Name:  strPtr(" Sam "),
		Email: strPtr("Sam@Example.com"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.UserName)
	assert.Equal(t, "Sam", *res.UserName)
	assert.Equal(t, "sam@example.com", *res.UserEmail)
	assert.Nil(t, res.UserPhone)

	res, err = f.svc.UpdateContactDetails(ctx, started.ThreadId, &dto.UpdateChatContactRequest{Phone: strPtr("555-0199"), Name: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, res.UserName)
	assert.Equal(t, "sam@example.com", *res.UserEmail)
	assert.Equal(t, "555-0199", *res.UserPhone)

	mine, err := f.svc.ListForEmail(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	f.start(t)
	blank, err := f.svc.ListForEmail(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, blank)
	assert.Empty(t, blank, "blank email must not list every conversation")
}

func TestChatAdminOperations(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	first := f.start(t)
	second := f.start(t)
	adminId := uuid.New()

	_, err := f.svc.SendMessage(ctx, first.ThreadId, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)

	require.NoError(t, f.svc.SetContacted(ctx, adminId, second.ConversationId, true))
	open, err := f.svc.ListConversations(ctx, &dto.ListConversationsRequest{Contacted: "false"})
	require.NoError(t, err)
	require.Len(t, open.Items, 1)
	assert.Equal(t, first.ConversationId, open.Items[0].Id)

	detail, err := f.svc.GetConversation(ctx, first.ConversationId)
	require.NoError(t, err)
	assert.Len(t, detail.Messages, 2)

	require.NoError(t, f.svc.Delete(ctx, adminId, first.ConversationId))
	assert.NotContains(t, f.store.conversations, first.ConversationId)
	assert.Empty(t, f.store.messages)
	_, ok := f.threads.Get(ctx, first.ThreadId)
	assert.False(t, ok)

	_, err = f.svc.GetConversation(ctx, first.ConversationId)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.svc.SetContacted(ctx, adminId, first.ConversationId, true), ErrNotFound)

	assert.Equal(t, []string{ActionChatMarkContacted, ActionChatDelete}, f.audit.actions())
}

func TestChatDeleteRollsBack(t *testing.T) {
	f := newChatFixture(t)
	ctx := context.Background()
	started := f.start(t)
	_, err := f.svc.SendMessage(ctx, started.ThreadId, &dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)

	f.store.failOn["conversations.Delete"] = true
	err = f.svc.Delete(ctx, uuid.New(), started.ConversationId)
	assert.ErrorIs(t, err, errStore)

	assert.Contains(t, f.store.conversations, started.ConversationId)
	assert.Len(t, f.store.messages, 2, "messages restored on rollback")
	assert.Empty(t, f.audit.actions())
}
