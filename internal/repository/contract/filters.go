package contract

import "github.com/google/uuid"

// Limit <= 0 means no limit.

type ContactFilter struct {
	Contacted *bool
	Email     string
	Limit     int
	Offset    int
}

type ConversationFilter struct {
	Contacted *bool
	Email     string
	Limit     int
	Offset    int
}

type ProfileFilter struct {
	Query  string
	Role   string
	Limit  int
	Offset int
}

type AdminLogFilter struct {
	Action      string
	PerformedBy *uuid.UUID
	Limit       int
	Offset      int
}
