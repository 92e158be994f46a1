package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller_secret"

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app.Group("/api"))
	return app
}

func token(t *testing.T, userId uuid.UUID, role string) string {
	t.Helper()
	tok, err := serverutils.IssueToken(testSecret, userId, role, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, app *fiber.App, method, target, body, bearer string) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

type mockContactService struct {
	SubmitFn       func(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	ListFn         func(ctx context.Context, req *dto.ListContactsRequest) (*dto.PaginatedResponse[dto.ContactResponse], error)
	SetContactedFn func(ctx context.Context, adminId, id uuid.UUID, contacted bool) error
	DeleteFn       func(ctx context.Context, adminId, id uuid.UUID) error
	ListForEmailFn func(ctx context.Context, email string) ([]dto.ContactResponse, error)
}

func (m *mockContactService) Submit(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	return m.SubmitFn(ctx, req)
}
func (m *mockContactService) List(ctx context.Context, req *dto.ListContactsRequest) (*dto.PaginatedResponse[dto.ContactResponse], error) {
	return m.ListFn(ctx, req)
}
func (m *mockContactService) SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error {
	return m.SetContactedFn(ctx, adminId, id, contacted)
}
func (m *mockContactService) Delete(ctx context.Context, adminId, id uuid.UUID) error {
	return m.DeleteFn(ctx, adminId, id)
}
func (m *mockContactService) ListForEmail(ctx context.Context, email string) ([]dto.ContactResponse, error) {
	return m.ListForEmailFn(ctx, email)
}

type mockChatService struct {
	StartConversationFn    func(ctx context.Context) (*dto.StartConversationResponse, error)
	SendMessageFn          func(ctx context.Context, threadId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	UpdateContactDetailsFn func(ctx context.Context, threadId string, req *dto.UpdateChatContactRequest) (*dto.ConversationResponse, error)
	TranscriptFn           func(ctx context.Context, threadId string) ([]dto.ChatMessageResponse, error)
	ListConversationsFn    func(ctx context.Context, req *dto.ListConversationsRequest) (*dto.PaginatedResponse[dto.ConversationResponse], error)
	GetConversationFn      func(ctx context.Context, id uuid.UUID) (*dto.ConversationDetailResponse, error)
	SetContactedFn         func(ctx context.Context, adminId, id uuid.UUID, contacted bool) error
	DeleteFn               func(ctx context.Context, adminId, id uuid.UUID) error
	ListForEmailFn         func(ctx context.Context, email string) ([]dto.ConversationResponse, error)
}

func (m *mockChatService) StartConversation(ctx context.Context) (*dto.StartConversationResponse, error) {
	return m.StartConversationFn(ctx)
}
func (m *mockChatService) SendMessage(ctx context.Context, threadId string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	return m.SendMessageFn(ctx, threadId, req)
}
func (m *mockChatService) UpdateContactDetails(ctx context.Context, threadId string, req *dto.UpdateChatContactRequest) (*dto.ConversationResponse, error) {
	return m.UpdateContactDetailsFn(ctx, threadId, req)
}
func (m *mockChatService) Transcript(ctx context.Context, threadId string) ([]dto.ChatMessageResponse, error) {
	return m.TranscriptFn(ctx, threadId)
}
func (m *mockChatService) ListConversations(ctx context.Context, req *dto.ListConversationsRequest) (*dto.PaginatedResponse[dto.ConversationResponse], error) {
	return m.ListConversationsFn(ctx, req)
}
func (m *mockChatService) GetConversation(ctx context.Context, id uuid.UUID) (*dto.ConversationDetailResponse, error) {
	return m.GetConversationFn(ctx, id)
}
func (m *mockChatService) SetContacted(ctx context.Context, adminId, id uuid.UUID, contacted bool) error {
	return m.SetContactedFn(ctx, adminId, id, contacted)
}
func (m *mockChatService) Delete(ctx context.Context, adminId, id uuid.UUID) error {
	return m.DeleteFn(ctx, adminId, id)
}
func (m *mockChatService) ListForEmail(ctx context.Context, email string) ([]dto.ConversationResponse, error) {
	return m.ListForEmailFn(ctx, email)
}

type mockAuthService struct {
	RegisterFn   func(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	LoginFn      func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdminFn func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return m.RegisterFn(ctx, req)
}
func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.LoginFn(ctx, req)
}
func (m *mockAuthService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.LoginAdminFn(ctx, req)
}

type mockProfileService struct {
	GetProfileFn    func(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfileFn func(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	return m.GetProfileFn(ctx, userId)
}
func (m *mockProfileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return m.UpdateProfileFn(ctx, userId, req)
}

type mockAdminService struct {
	DashboardStatsFn  func(ctx context.Context) (*dto.DashboardStatsResponse, error)
	ListUsersFn       func(ctx context.Context, req *dto.ListUsersRequest) (*dto.PaginatedResponse[dto.ProfileResponse], error)
	GetUserFn         func(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error)
	UpdateRoleFn      func(ctx context.Context, adminId, id uuid.UUID, role string) (*dto.ProfileResponse, error)
	DeleteUserFn      func(ctx context.Context, adminId, id uuid.UUID) ([]dto.DeleteUserStep, error)
	ListAdminLogsFn   func(ctx context.Context, req *dto.ListAdminLogsRequest) (*dto.PaginatedResponse[dto.AdminLogResponse], error)
	SystemLogsFn      func(ctx context.Context, req *dto.ListSystemLogsRequest) ([]dto.SystemLogResponse, error)
	SystemLogDetailFn func(ctx context.Context, id string) (*dto.SystemLogResponse, error)
}

func (m *mockAdminService) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	return m.DashboardStatsFn(ctx)
}
func (m *mockAdminService) ListUsers(ctx context.Context, req *dto.ListUsersRequest) (*dto.PaginatedResponse[dto.ProfileResponse], error) {
	return m.ListUsersFn(ctx, req)
}
func (m *mockAdminService) GetUser(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	return m.GetUserFn(ctx, id)
}
func (m *mockAdminService) UpdateRole(ctx context.Context, adminId, id uuid.UUID, role string) (*dto.ProfileResponse, error) {
	return m.UpdateRoleFn(ctx, adminId, id, role)
}
func (m *mockAdminService) DeleteUser(ctx context.Context, adminId, id uuid.UUID) ([]dto.DeleteUserStep, error) {
	return m.DeleteUserFn(ctx, adminId, id)
}
func (m *mockAdminService) ListAdminLogs(ctx context.Context, req *dto.ListAdminLogsRequest) (*dto.PaginatedResponse[dto.AdminLogResponse], error) {
	return m.ListAdminLogsFn(ctx, req)
}
func (m *mockAdminService) SystemLogs(ctx context.Context, req *dto.ListSystemLogsRequest) ([]dto.SystemLogResponse, error) {
	return m.SystemLogsFn(ctx, req)
}
func (m *mockAdminService) SystemLogDetail(ctx context.Context, id string) (*dto.SystemLogResponse, error) {
	return m.SystemLogDetailFn(ctx, id)
}

type mockAccountService struct {
	DeleteUserFn func(ctx context.Context, userId, performedBy uuid.UUID) ([]dto.DeleteUserStep, error)
}

func (m *mockAccountService) DeleteUser(ctx context.Context, userId, performedBy uuid.UUID) ([]dto.DeleteUserStep, error) {
	return m.DeleteUserFn(ctx, userId, performedBy)
}

type mockSchemaService struct {
	PatchFn func(ctx context.Context, performedBy uuid.UUID) (map[string][]string, error)
}

func (m *mockSchemaService) Patch(ctx context.Context, performedBy uuid.UUID) (map[string][]string, error) {
	return m.PatchFn(ctx, performedBy)
}
