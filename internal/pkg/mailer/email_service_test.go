package mailer

import (
	"testing"

	"roofing-site-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderContactBodyEscapesInput(t *testing.T) {
	body := renderContactBody(&entity.ContactSubmission{
		Name:    "<b>Bob</b>",
		Email:   "bob@example.com",
		Message: "Leak over the garage\n<script>alert(1)</script>",
	}, "https://example.com")

	assert.Contains(t, body, "&lt;b&gt;Bob&lt;/b&gt;")
	assert.Contains(t, body, "Leak over the garage<br>&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "not provided")
	assert.Contains(t, body, "https://example.com/admin/contacts")
}

func TestContactSubject(t *testing.T) {
	assert.Equal(t, "New estimate request from Jane Roe", contactSubject(&entity.ContactSubmission{Name: "  Jane Roe "}))
}

func TestNewEmailServiceAdminLink(t *testing.T) {
	svc := NewEmailService("smtp.example.com", 587, "site@example.com", "secret", "Site", "inbox@example.com", "https://roofs.example.com/").(*emailService)

	body := renderContactBody(&entity.ContactSubmission{Name: "Jane", Email: "jane@example.com", Message: "Hi"}, svc.siteURL)
	assert.Contains(t, body, `href="https://roofs.example.com/admin/contacts"`)
	assert.NotContains(t, body, "/admin/contacts/admin/contacts")
}
