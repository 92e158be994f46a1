package mapper

import (
	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/pkg/logger"
)

// ContactToResponse converts entity to response DTO
func ContactToResponse(c *entity.ContactSubmission) dto.ContactResponse {
	return dto.ContactResponse{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		Consent:   c.Consent,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
	}
}

func ContactsToResponse(items []*entity.ContactSubmission) []dto.ContactResponse {
	res := make([]dto.ContactResponse, 0, len(items))
	for _, c := range items {
		res = append(res, ContactToResponse(c))
	}
	return res
}

func ConversationToResponse(c *entity.ChatConversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		Id:        c.Id,
		ThreadId:  c.ThreadId,
		UserName:  c.UserName,
		UserEmail: c.UserEmail,
		UserPhone: c.UserPhone,
		Contacted: c.Contacted,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func ConversationsToResponse(items []*entity.ChatConversation) []dto.ConversationResponse {
	res := make([]dto.ConversationResponse, 0, len(items))
	for _, c := range items {
		res = append(res, ConversationToResponse(c))
	}
	return res
}

func MessageToResponse(m *entity.ChatMessage) dto.ChatMessageResponse {
	return dto.ChatMessageResponse{
		Id:        m.Id,
		Sender:    string(m.Sender),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func MessagesToResponse(items []*entity.ChatMessage) []dto.ChatMessageResponse {
	res := make([]dto.ChatMessageResponse, 0, len(items))
	for _, m := range items {
		res = append(res, MessageToResponse(m))
	}
	return res
}

// ProfileToResponse converts entity to profile response DTO
func ProfileToResponse(p *entity.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		Id:        p.Id,
		Email:     p.Email,
		FullName:  p.FullName,
		Username:  p.Username,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ProfilesToResponse(items []*entity.Profile) []dto.ProfileResponse {
	res := make([]dto.ProfileResponse, 0, len(items))
	for _, p := range items {
		res = append(res, ProfileToResponse(p))
	}
	return res
}

func AdminLogToResponse(l *entity.AdminLog) dto.AdminLogResponse {
	details := l.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	return dto.AdminLogResponse{
		Id:          l.Id,
		Action:      l.Action,
		PerformedBy: l.PerformedBy,
		TargetId:    l.TargetId,
		Details:     details,
		CreatedAt:   l.CreatedAt,
	}
}

func AdminLogsToResponse(items []*entity.AdminLog) []dto.AdminLogResponse {
	res := make([]dto.AdminLogResponse, 0, len(items))
	for _, l := range items {
		res = append(res, AdminLogToResponse(l))
	}
	return res
}

func LogEntryToResponse(e logger.LogEntry) dto.SystemLogResponse {
	return dto.SystemLogResponse{
		Id:        e.Id,
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Module:    e.Module,
		Message:   e.Message,
		Details:   e.Details,
	}
}
