package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	Consent   bool
	Contacted bool
	CreatedAt time.Time
}
