package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	store   *memStore
	audit   *fakeAudit
	feed    *fakeFeed
	svc     IAdminService
	adminId uuid.UUID
}

func newAdminFixture(t *testing.T) *adminFixture {
	f := &adminFixture{
		store: newMemStore(),
		audit: &fakeAudit{},
		feed:  &fakeFeed{},
	}
	log := testLogger(t)
	factory := &fakeFactory{f.store}
	account := NewAccountService(factory, &fakePublisher{}, f.audit, log)
	f.svc = NewAdminService(factory, account, f.feed, f.audit, log)

	admin := seedProfile(f.store, "boss@example.com", "boss", entity.UserRoleAdmin)
	f.adminId = admin.Id
	return f
}

func TestAdminDashboardStats(t *testing.T) {
	f := newAdminFixture(t)
	seedContacts(t, f.store)
	seedProfile(f.store, "u@example.com", "", entity.UserRoleUser)
	convId := uuid.New()
	f.store.conversations[convId] = &entity.ChatConversation{Id: convId, ThreadId: "t1", CreatedAt: time.Now()}
	msgId := uuid.New()
	f.store.messages[msgId] = &entity.ChatMessage{Id: msgId, ConversationId: convId, Content: "hi"}

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.DashboardStatsResponse{
		TotalContacts:       3,
		UncontactedContacts: 2,
		TotalConversations:  1,
		UncontactedChats:    1,
		TotalMessages:       1,
		TotalUsers:          2,
		TotalAdmins:         1,
		LiveFeedConnections: 2,
	}, stats)
}

func TestAdminListUsers(t *testing.T) {
	f := newAdminFixture(t)
	seedProfile(f.store, "jane@example.com", "", entity.UserRoleUser)
	seedProfile(f.store, "joe@example.com", "", entity.UserRoleUser)

	all, err := f.svc.ListUsers(context.Background(), &dto.ListUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Meta.Total)

	users, err := f.svc.ListUsers(context.Background(), &dto.ListUsersRequest{Role: "user"})
	require.NoError(t, err)
	assert.Len(t, users.Items, 2)

	jane, err := f.svc.ListUsers(context.Background(), &dto.ListUsersRequest{Q: "JANE"})
	require.NoError(t, err)
	require.Len(t, jane.Items, 1)
	assert.Equal(t, "jane@example.com", jane.Items[0].Email)
}

func TestAdminUpdateRole(t *testing.T) {
	f := newAdminFixture(t)
	user := seedProfile(f.store, "u@example.com", "", entity.UserRoleUser)
	ctx := context.Background()

	res, err := f.svc.UpdateRole(ctx, f.adminId, user.Id, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", res.Role)
	assert.Equal(t, entity.UserRoleAdmin, f.store.profiles[user.Id].Role)
	require.Equal(t, []string{ActionUserUpdateRole}, f.audit.actions())
	assert.Equal(t, map[string]interface{}{"from": "user", "to": "admin"}, f.audit.entries[0].Details)

	// unchanged role is not audited
	_, err = f.svc.UpdateRole(ctx, f.adminId, user.Id, "admin")
	require.NoError(t, err)
	assert.Len(t, f.audit.actions(), 1)

	_, err = f.svc.UpdateRole(ctx, f.adminId, f.adminId, "user")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.UpdateRole(ctx, f.adminId, uuid.New(), "user")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.UpdateRole(ctx, f.adminId, user.Id, "owner")
	assert.Error(t, err)
}

func TestAdminDeleteUser(t *testing.T) {
	f := newAdminFixture(t)
	user := seedProfile(f.store, "u@example.com", "", entity.UserRoleUser)
	f.store.authUsers[user.Id] = &entity.AuthUser{Id: user.Id, Email: user.Email}
	ctx := context.Background()

	_, err := f.svc.DeleteUser(ctx, f.adminId, f.adminId)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.DeleteUser(ctx, f.adminId, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	steps, err := f.svc.DeleteUser(ctx, f.adminId, user.Id)
	require.NoError(t, err)
	assert.Len(t, steps, 3)
	assert.NotContains(t, f.store.profiles, user.Id)
	assert.Equal(t, []string{ActionUserDelete}, f.audit.actions())
	assert.Equal(t, f.adminId, f.audit.entries[0].PerformedBy)
}

func TestAdminDeleteUserStepFailure(t *testing.T) {
	f := newAdminFixture(t)
	user := seedProfile(f.store, "u@example.com", "", entity.UserRoleUser)
	f.store.failOn["authUsers.Delete"] = true

	_, err := f.svc.DeleteUser(context.Background(), f.adminId, user.Id)
	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, StepAuthUser, stepErr.Step)
	assert.Contains(t, f.store.profiles, user.Id)
}

func TestAdminListAdminLogs(t *testing.T) {
	f := newAdminFixture(t)
	base := time.Now()
	for i, action := range []string{ActionContactDelete, ActionChatDelete, ActionContactDelete} {
		id := uuid.New()
		f.store.adminLogs[id] = &entity.AdminLog{Id: id, Action: action, PerformedBy: f.adminId, CreatedAt: base.Add(time.Duration(i) * time.Second)}
	}

	all, err := f.svc.ListAdminLogs(context.Background(), &dto.ListAdminLogsRequest{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, ActionContactDelete, all.Items[0].Action)
	assert.NotNil(t, all.Items[0].Details)

	chats, err := f.svc.ListAdminLogs(context.Background(), &dto.ListAdminLogsRequest{Action: ActionChatDelete})
	require.NoError(t, err)
	assert.Equal(t, int64(1), chats.Meta.Total)
}

func TestAdminSystemLogs(t *testing.T) {
	log := testLogger(t)
	svc := NewAdminService(&fakeFactory{newMemStore()}, nil, nil, &fakeAudit{}, log)

	log.Info("CONTACT", "one", nil)
	log.Error("CHAT", "two", map[string]interface{}{"error": "x"})
	require.NoError(t, log.Sync())

	entries, err := svc.SystemLogs(context.Background(), &dto.ListSystemLogsRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[0].Message)

	errorsOnly, err := svc.SystemLogs(context.Background(), &dto.ListSystemLogsRequest{Level: "ERROR"})
	require.NoError(t, err)
	assert.Len(t, errorsOnly, 1)

	detail, err := svc.SystemLogDetail(context.Background(), entries[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "one", detail.Message)

	_, err = svc.SystemLogDetail(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.LiveFeedConnections)
}
