package service

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/pkg/logger"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var errStore = errors.New("store failure")

// memStore backs every fake repository. Begin snapshots it and Rollback restores it.
type memStore struct {
	mu            sync.Mutex
	contacts      map[uuid.UUID]*entity.ContactSubmission
	conversations map[uuid.UUID]*entity.ChatConversation
	messages      map[uuid.UUID]*entity.ChatMessage
	profiles      map[uuid.UUID]*entity.Profile
	authUsers     map[uuid.UUID]*entity.AuthUser
	adminLogs     map[uuid.UUID]*entity.AdminLog
	columns       map[string]bool

	// failOn makes the named operation return errStore, e.g. "profiles.Delete".
	failOn map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		contacts:      map[uuid.UUID]*entity.ContactSubmission{},
		conversations: map[uuid.UUID]*entity.ChatConversation{},
		messages:      map[uuid.UUID]*entity.ChatMessage{},
		profiles:      map[uuid.UUID]*entity.Profile{},
		authUsers:     map[uuid.UUID]*entity.AuthUser{},
		adminLogs:     map[uuid.UUID]*entity.AdminLog{},
		columns:       map[string]bool{},
		failOn:        map[string]bool{},
	}
}

func copyMap[K comparable, V any](in map[K]*V) map[K]*V {
	out := make(map[K]*V, len(in))
	for k, v := range in {
		c := *v
		out[k] = &c
	}
	return out
}

type snapshot struct {
	contacts      map[uuid.UUID]*entity.ContactSubmission
	conversations map[uuid.UUID]*entity.ChatConversation
	messages      map[uuid.UUID]*entity.ChatMessage
	profiles      map[uuid.UUID]*entity.Profile
	authUsers     map[uuid.UUID]*entity.AuthUser
	adminLogs     map[uuid.UUID]*entity.AdminLog
	columns       map[string]bool
}

func (s *memStore) snapshot() *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	cols := make(map[string]bool, len(s.columns))
	for k, v := range s.columns {
		cols[k] = v
	}
	return &snapshot{
		contacts:      copyMap(s.contacts),
		conversations: copyMap(s.conversations),
		messages:      copyMap(s.messages),
		profiles:      copyMap(s.profiles),
		authUsers:     copyMap(s.authUsers),
		adminLogs:     copyMap(s.adminLogs),
		columns:       cols,
	}
}

func (s *memStore) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = snap.contacts
	s.conversations = snap.conversations
	s.messages = snap.messages
	s.profiles = snap.profiles
	s.authUsers = snap.authUsers
	s.adminLogs = snap.adminLogs
	s.columns = snap.columns
}

func (s *memStore) fail(op string) error {
	if s.failOn[op] {
		return errStore
	}
	return nil
}

func (s *memStore) adminLogCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.adminLogs)
}

// window applies limit/offset the way the gorm Pagination specification does.
func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// --- unit of work ---

type fakeFactory struct {
	store *memStore
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{store: f.store}
}

type fakeUoW struct {
	store *memStore
	snap  *snapshot
}

func (u *fakeUoW) Begin(ctx context.Context) error {
	if err := u.store.fail("Begin"); err != nil {
		return err
	}
	u.snap = u.store.snapshot()
	return nil
}

func (u *fakeUoW) Commit() error {
	if err := u.store.fail("Commit"); err != nil {
		return err
	}
	u.snap = nil
	return nil
}

func (u *fakeUoW) Rollback() error {
	if u.snap != nil {
		u.store.restore(u.snap)
		u.snap = nil
	}
	return nil
}

func (u *fakeUoW) ContactRepository() contract.ContactRepository {
	return &fakeContactRepo{u.store}
}
func (u *fakeUoW) ChatConversationRepository() contract.ChatConversationRepository {
	return &fakeConversationRepo{u.store}
}
func (u *fakeUoW) ChatMessageRepository() contract.ChatMessageRepository {
	return &fakeMessageRepo{u.store}
}
func (u *fakeUoW) ProfileRepository() contract.ProfileRepository {
	return &fakeProfileRepo{u.store}
}
func (u *fakeUoW) AuthUserRepository() contract.AuthUserRepository {
	return &fakeAuthUserRepo{u.store}
}
func (u *fakeUoW) AdminLogRepository() contract.AdminLogRepository {
	return &fakeAdminLogRepo{u.store}
}
func (u *fakeUoW) SchemaRepository() contract.SchemaRepository {
	return &fakeSchemaRepo{u.store}
}

// --- contacts ---

type fakeContactRepo struct{ s *memStore }

func (r *fakeContactRepo) Create(_ context.Context, c *entity.ContactSubmission) error {
	if err := r.s.fail("contacts.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	r.s.contacts[c.Id] = &cp
	return nil
}

func (r *fakeContactRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ContactSubmission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.contacts[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeContactRepo) filtered(filter contract.ContactFilter) []*entity.ContactSubmission {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ContactSubmission
	for _, c := range r.s.contacts {
		if filter.Contacted != nil && c.Contacted != *filter.Contacted {
			continue
		}
		if filter.Email != "" && !strings.EqualFold(c.Email, filter.Email) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeContactRepo) List(_ context.Context, filter contract.ContactFilter) ([]*entity.ContactSubmission, error) {
	if err := r.s.fail("contacts.List"); err != nil {
		return nil, err
	}
	return window(r.filtered(filter), filter.Limit, filter.Offset), nil
}

func (r *fakeContactRepo) Count(_ context.Context, filter contract.ContactFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeContactRepo) SetContacted(_ context.Context, id uuid.UUID, contacted bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.contacts[id]; ok {
		c.Contacted = contacted
	}
	return nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.contacts, id)
	return nil
}

// --- conversations ---

type fakeConversationRepo struct{ s *memStore }

func (r *fakeConversationRepo) Create(_ context.Context, c *entity.ChatConversation) error {
	if err := r.s.fail("conversations.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.conversations {
		if existing.ThreadId == c.ThreadId {
			return errors.New("duplicate thread_id")
		}
	}
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	cp := *c
	r.s.conversations[c.Id] = &cp
	return nil
}

func (r *fakeConversationRepo) Update(_ context.Context, c *entity.ChatConversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.UpdatedAt = time.Now()
	cp := *c
	r.s.conversations[c.Id] = &cp
	return nil
}

func (r *fakeConversationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ChatConversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.conversations[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindByThreadID(_ context.Context, threadID string) (*entity.ChatConversation, error) {
	if err := r.s.fail("conversations.FindByThreadID"); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.conversations {
		if c.ThreadId == threadID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) filtered(filter contract.ConversationFilter) []*entity.ChatConversation {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ChatConversation
	for _, c := range r.s.conversations {
		if filter.Contacted != nil && c.Contacted != *filter.Contacted {
			continue
		}
		if filter.Email != "" && (c.UserEmail == nil || !strings.EqualFold(*c.UserEmail, filter.Email)) {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeConversationRepo) List(_ context.Context, filter contract.ConversationFilter) ([]*entity.ChatConversation, error) {
	return window(r.filtered(filter), filter.Limit, filter.Offset), nil
}

func (r *fakeConversationRepo) Count(_ context.Context, filter contract.ConversationFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeConversationRepo) SetContacted(_ context.Context, id uuid.UUID, contacted bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c, ok := r.s.conversations[id]; ok {
		c.Contacted = contacted
	}
	return nil
}

func (r *fakeConversationRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.s.fail("conversations.Delete"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.conversations, id)
	return nil
}

// --- messages ---

type fakeMessageRepo struct{ s *memStore }

func (r *fakeMessageRepo) Create(_ context.Context, m *entity.ChatMessage) error {
	if err := r.s.fail("messages.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	cp := *m
	r.s.messages[m.Id] = &cp
	return nil
}

func (r *fakeMessageRepo) ListByConversation(_ context.Context, conversationID uuid.UUID) ([]*entity.ChatMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*entity.ChatMessage{}
	for _, m := range r.s.messages {
		if m.ConversationId == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeMessageRepo) DeleteByConversation(_ context.Context, conversationID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, m := range r.s.messages {
		if m.ConversationId == conversationID {
			delete(r.s.messages, id)
		}
	}
	return nil
}

func (r *fakeMessageRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.messages)), nil
}

// --- profiles ---

type fakeProfileRepo struct{ s *memStore }

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	if err := r.s.fail("profiles.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.s.profiles[p.Id] = &cp
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.UpdatedAt = time.Now()
	cp := *p
	r.s.profiles[p.Id] = &cp
	return nil
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByUsername(_ context.Context, username string) (*entity.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.Username != nil && *p.Username == username {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) filtered(filter contract.ProfileFilter) []*entity.Profile {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Profile
	q := strings.ToLower(filter.Query)
	for _, p := range r.s.profiles {
		if filter.Role != "" && string(p.Role) != filter.Role {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.FullName+" "+p.Email), q) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeProfileRepo) List(_ context.Context, filter contract.ProfileFilter) ([]*entity.Profile, error) {
	return window(r.filtered(filter), filter.Limit, filter.Offset), nil
}

func (r *fakeProfileRepo) Count(_ context.Context, filter contract.ProfileFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if err := r.s.fail("profiles.Delete"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.profiles[id]; !ok {
		return 0, nil
	}
	delete(r.s.profiles, id)
	return 1, nil
}

// --- auth users ---

type fakeAuthUserRepo struct{ s *memStore }

func (r *fakeAuthUserRepo) Create(_ context.Context, u *entity.AuthUser) error {
	if err := r.s.fail("authUsers.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.authUsers[u.Id] = &cp
	return nil
}

func (r *fakeAuthUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AuthUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.authUsers[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (*entity.AuthUser, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.authUsers {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAuthUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if err := r.s.fail("authUsers.Delete"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.authUsers[id]; !ok {
		return 0, nil
	}
	delete(r.s.authUsers, id)
	return 1, nil
}

// --- admin logs ---

type fakeAdminLogRepo struct{ s *memStore }

func (r *fakeAdminLogRepo) Create(_ context.Context, l *entity.AdminLog) error {
	if err := r.s.fail("adminLogs.Create"); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l.Id == uuid.Nil {
		l.Id = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	cp := *l
	r.s.adminLogs[l.Id] = &cp
	return nil
}

func (r *fakeAdminLogRepo) filtered(filter contract.AdminLogFilter) []*entity.AdminLog {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.AdminLog
	for _, l := range r.s.adminLogs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		if filter.PerformedBy != nil && l.PerformedBy != *filter.PerformedBy {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeAdminLogRepo) List(_ context.Context, filter contract.AdminLogFilter) ([]*entity.AdminLog, error) {
	return window(r.filtered(filter), filter.Limit, filter.Offset), nil
}

func (r *fakeAdminLogRepo) Count(_ context.Context, filter contract.AdminLogFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeAdminLogRepo) DeleteByPerformer(_ context.Context, userID uuid.UUID) (int64, error) {
	if err := r.s.fail("adminLogs.DeleteByPerformer"); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, l := range r.s.adminLogs {
		if l.PerformedBy == userID {
			delete(r.s.adminLogs, id)
			n++
		}
	}
	return n, nil
}

// --- schema ---

type fakeSchemaRepo struct{ s *memStore }

func (r *fakeSchemaRepo) HasColumn(_ context.Context, table, column string) (bool, error) {
	if err := r.s.fail("schema.HasColumn"); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.columns[table+"."+column], nil
}

func (r *fakeSchemaRepo) AddColumn(_ context.Context, table, column, _ string) error {
	if err := r.s.fail("schema.AddColumn." + table + "." + column); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.columns[table+"."+column] = true
	return nil
}

// --- collaborators ---

type recordedAudit struct {
	Action      string
	PerformedBy uuid.UUID
	TargetId    string
	Details     map[string]interface{}
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []recordedAudit
}

func (a *fakeAudit) Record(_ context.Context, action string, performedBy uuid.UUID, targetId string, details map[string]interface{}) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, recordedAudit{action, performedBy, targetId, details})
}

func (a *fakeAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Action)
	}
	return out
}

type feedEvent struct {
	Type string
	Data interface{}
}

type fakeFeed struct {
	mu     sync.Mutex
	events []feedEvent
}

func (f *fakeFeed) Publish(eventType string, data interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, feedEvent{eventType, data})
}

func (f *fakeFeed) ClientCount() int { return 2 }

func (f *fakeFeed) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *fakePublisher) record(t string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, t)
}

func (p *fakePublisher) PublishContactSubmitted(context.Context, uuid.UUID, string, string) {
	p.record("CONTACT_SUBMITTED")
}
func (p *fakePublisher) PublishChatStarted(context.Context, uuid.UUID, string) {
	p.record("CHAT_STARTED")
}
func (p *fakePublisher) PublishUserDeleted(context.Context, uuid.UUID, uuid.UUID) {
	p.record("USER_DELETED")
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func testLogger(t *testing.T) logger.ILogger {
	t.Helper()
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
}

func strPtr(s string) *string { return &s }
