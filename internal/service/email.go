package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"association-admin-backend/internal/domain"
)

type emailService struct {
	apiKey      string
	fromEmail   string
	fromName    string
	frontendURL string
}

// NewEmailService builds the SendGrid-backed email sender. All settings are
// injected here; nothing reads the environment at send time.
func NewEmailService(apiKey, fromEmail, fromName, frontendURL string) EmailService {
	return &emailService{
		apiKey:      apiKey,
		fromEmail:   fromEmail,
		fromName:    fromName,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendApprovalNotification(ctx context.Context, email, name, membershipNumber string) error {
	subject := "Your membership application has been approved"
	plainText := fmt.Sprintf("Hello %s,\n\nYour membership application has been approved. Your membership number is %s.\n\nYou can pick up your membership card at the association office.", name, membershipNumber)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Membership approved</h2>
				<p>Hello %s,</p>
				<p>Your membership application has been approved. Your membership number is <strong>%s</strong>.</p>
				<p>You can pick up your membership card at the association office.</p>
			</body>
		</html>
	`, name, membershipNumber)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendRejectionNotification(ctx context.Context, email, name, reason string) error {
	subject := "Your membership application has been reviewed"
	plainText := fmt.Sprintf("Hello %s,\n\nYour membership application has been rejected.\n\nReason: %s\n\nYou may contact the association office for more information.", name, reason)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Membership application reviewed</h2>
				<p>Hello %s,</p>
				<p>Your membership application has been rejected.</p>
				<p>Reason: %s</p>
				<p>You may contact the association office for more information.</p>
			</body>
		</html>
	`, name, reason)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendInvitation(ctx context.Context, email string, role domain.UserRole, token string) error {
	link := fmt.Sprintf("%s/register?token=%s", s.frontendURL, token)
	subject := "You have been invited to create an account"
	plainText := fmt.Sprintf("Hello,\n\nYou have been invited to create a %s account. The invitation expires in 7 days.\n\nComplete your registration here: %s", role, link)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Account invitation</h2>
				<p>You have been invited to create a <strong>%s</strong> account. The invitation expires in 7 days.</p>
				<p><a href="%s">Complete your registration</a></p>
			</body>
		</html>
	`, role, link)
	return s.send(email, "", subject, plainText, htmlContent)
}

func (s *emailService) SendPendingReviewReminder(ctx context.Context, adminEmail, adminName string, pendingCount int64) error {
	subject := fmt.Sprintf("%d membership forms awaiting review", pendingCount)
	plainText := fmt.Sprintf("Hello %s,\n\nThere are %d submitted membership forms waiting for review.\n\nReview them here: %s/admin/membership-forms", adminName, pendingCount, s.frontendURL)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Pending membership forms</h2>
				<p>Hello %s,</p>
				<p>There are <strong>%d</strong> submitted membership forms waiting for review.</p>
				<p><a href="%s/admin/membership-forms">Review them</a></p>
			</body>
		</html>
	`, adminName, pendingCount, s.frontendURL)
	return s.send(adminEmail, adminName, subject, plainText, htmlContent)
}
