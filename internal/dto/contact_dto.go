// FILE: internal/dto/contact_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required,max=5000"`
	Consent bool   `json:"consent" validate:"eq=true"`
}

type ContactResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Consent   bool      `json:"consent"`
	Contacted bool      `json:"contacted"`
	CreatedAt time.Time `json:"created_at"`
}

// ListContactsRequest is bound from the query string. Contacted is "all", "true" or "false".
type ListContactsRequest struct {
	Contacted string `query:"contacted" validate:"omitempty,oneof=all true false"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

type SetContactedRequest struct {
	Contacted *bool `json:"contacted" validate:"required"`
}
