// FILE: internal/dto/admin_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type PaginatedResponse[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

type DashboardStatsResponse struct {
	TotalContacts       int64 `json:"total_contacts"`
	UncontactedContacts int64 `json:"uncontacted_contacts"`
	TotalConversations  int64 `json:"total_conversations"`
	UncontactedChats    int64 `json:"uncontacted_conversations"`
	TotalMessages       int64 `json:"total_messages"`
	TotalUsers          int64 `json:"total_users"`
	TotalAdmins         int64 `json:"total_admins"`
	LiveFeedConnections int   `json:"live_feed_connections"`
}

type ListUsersRequest struct {
	Q     string `query:"q"`
	Role  string `query:"role" validate:"omitempty,oneof=user admin"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type AdminLogResponse struct {
	Id          uuid.UUID              `json:"id"`
	Action      string                 `json:"action"`
	PerformedBy uuid.UUID              `json:"performed_by"`
	TargetId    string                 `json:"target_id"`
	Details     map[string]interface{} `json:"details"`
	CreatedAt   time.Time              `json:"created_at"`
}

type ListAdminLogsRequest struct {
	Action string `query:"action"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type ListSystemLogsRequest struct {
	Level string `query:"level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR"`
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
}

// Note: log ids are md5 hashes of the raw line, not UUIDs.
type SystemLogResponse struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
