// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"github.com/NeedlessCat/SDPJSS-ALL/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when POSTMARK_API_TOKEN is not configured; callers treat a nil
// service as "email disabled".
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendDonationReceipt sends a thank-you email after a verified donation
func (es *EmailService) SendDonationReceipt(toEmail, fullname string, donation models.Donation) error {
	subject := "Thank You for Your Donation!"
	htmlContent := fmt.Sprintf(
		"<h2>Thank You for Your Donation!</h2>"+
			"<p>Dear %s,</p>"+
			"<p>Thank you for your generous donation. Here are the details:</p>"+
			"<ul>"+
			"<li><strong>Amount:</strong> ₹%.2f</li>"+
			"<li><strong>Purpose:</strong> %s</li>"+
			"<li><strong>Payment Method:</strong> %s</li>"+
			"<li><strong>Transaction ID:</strong> %s</li>"+
			"<li><strong>Date:</strong> %s</li>"+
			"<li><strong>Status:</strong> %s</li>"+
			"</ul>"+
			"<p>Your contribution will make a significant impact. We truly appreciate your support!</p>"+
			"<p>Best regards,<br><strong>The Donation Team</strong></p>",
		fullname,
		donation.Amount,
		donation.Purpose,
		donation.Method,
		donation.TransactionID,
		donation.CreatedAt.Format("02/01/2006"),
		donation.PaymentStatus,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
