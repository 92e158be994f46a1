package dashboard

import (
	"context"
	"fmt"

	"roofing-site-be/internal/dto"
	"roofing-site-be/internal/entity"
	"roofing-site-be/internal/repository/contract"
	"roofing-site-be/internal/repository/unitofwork"
)

// Aggregator handles dashboard statistics
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// GetStats runs the dashboard counters against one unit of work.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.DashboardStatsResponse, error) {
	notContacted := false
	stats := &dto.DashboardStatsResponse{}

	counters := []struct {
		name  string
		dest  *int64
		count func() (int64, error)
	}{
		{"contacts", &stats.TotalContacts, func() (int64, error) {
			return uow.ContactRepository().Count(ctx, contract.ContactFilter{})
		}},
		{"uncontacted contacts", &stats.UncontactedContacts, func() (int64, error) {
			return uow.ContactRepository().Count(ctx, contract.ContactFilter{Contacted: &notContacted})
		}},
		{"conversations", &stats.TotalConversations, func() (int64, error) {
			return uow.ChatConversationRepository().Count(ctx, contract.ConversationFilter{})
		}},
		{"uncontacted conversations", &stats.UncontactedChats, func() (int64, error) {
			return uow.ChatConversationRepository().Count(ctx, contract.ConversationFilter{Contacted: &notContacted})
		}},
		{"messages", &stats.TotalMessages, func() (int64, error) {
			return uow.ChatMessageRepository().Count(ctx)
		}},
		{"users", &stats.TotalUsers, func() (int64, error) {
			return uow.ProfileRepository().Count(ctx, contract.ProfileFilter{})
		}},
		{"admins", &stats.TotalAdmins, func() (int64, error) {
			return uow.ProfileRepository().Count(ctx, contract.ProfileFilter{Role: string(entity.UserRoleAdmin)})
		}},
	}

	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dest = n
	}

	return stats, nil
}
