package mailer

import (
	"fmt"
	"html"
	"strings"

	"roofing-site-be/internal/entity"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	NotifyNewContact(submission *entity.ContactSubmission) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	inbox       string
	siteURL     string
}

// NewEmailService takes the site's base URL; the dashboard path is appended when rendering.
func NewEmailService(host string, port int, username, password, senderName, inbox, siteURL string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		inbox:       inbox,
		siteURL:     strings.TrimRight(siteURL, "/"),
	}
}

// NotifyNewContact tells the contractor inbox about a new lead. Replies go to the visitor.
func (s *emailService) NotifyNewContact(submission *entity.ContactSubmission) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", s.inbox)
	m.SetAddressHeader("Reply-To", submission.Email, submission.Name)
	m.SetHeader("Subject", contactSubject(submission))
	m.SetBody("text/html", renderContactBody(submission, s.siteURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func contactSubject(submission *entity.ContactSubmission) string {
	return fmt.Sprintf("New estimate request from %s", strings.TrimSpace(submission.Name))
}

func renderContactBody(submission *entity.ContactSubmission, siteURL string) string {
	phone := submission.Phone
	if phone == "" {
		phone = "not provided"
	}
	message := strings.ReplaceAll(html.EscapeString(submission.Message), "\n", "<br>")

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact form submission</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
			<p><a href="%s/admin/contacts">Open the admin dashboard</a></p>
		</div>
	`,
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(phone),
		message,
		siteURL,
	)
}
