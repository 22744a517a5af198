package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Long182k/E-Commercial-Server/models"
	"github.com/keighl/postmark"
)

// EmailService sends transactional email through Postmark.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService reads POSTMARK_API_TOKEN and EMAIL_SENDER from the
// environment. With no token configured, sends fail with an error that
// callers log; the server still starts so local setups work without email.
func NewEmailService() *EmailService {
	token := os.Getenv("POSTMARK_API_TOKEN")
	if token == "" {
		log.Println("POSTMARK_API_TOKEN not set, outbound email disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: postmark.NewClient(token, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

func (es *EmailService) send(toEmail, subject, textBody string) error {
	if es.client == nil {
		return fmt.Errorf("email disabled: no postmark token configured")
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		TextBody: textBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmation emails the order reference, shipping address, line
// items and the full pricing breakdown.
func (es *EmailService) SendOrderConfirmation(toEmail, name, orderRef string, address models.Address, items []models.CartItemView, summary models.PricingSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "Thank you for your purchase! We're pleased to confirm your order.\n\n")
	fmt.Fprintf(&b, "Order Confirmation #%s\n\n", orderRef)
	fmt.Fprintf(&b, "Shipping Address:\n%s\n%s, %s %s\n%s\n\n",
		address.AddressLine, address.City, address.State, address.PostalCode, address.Country)

	b.WriteString("Items:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s x %d = $%.2f\n", item.ProductName, item.Quantity, item.Price*float64(item.Quantity))
	}

	fmt.Fprintf(&b, "\nOrder Summary:\nSubtotal: $%.2f\nShipping: $%.2f\nTax: $%.2f\n",
		summary.Subtotal, summary.Shipping, summary.Tax)
	if summary.Discount > 0 {
		fmt.Fprintf(&b, "Discount: -$%.2f\n", summary.Discount)
	}
	fmt.Fprintf(&b, "Total: $%.2f\n\nThank you for shopping with us!\n", summary.Total)

	return es.send(toEmail, fmt.Sprintf("Order Confirmation #%s", orderRef), b.String())
}

// SendPasswordReset emails a freshly generated password.
func (es *EmailService) SendPasswordReset(toEmail, name, newPassword string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nWe received a request to reset your password. Your new password is:\n\n%s\n\nFor security reasons, please log in and change your password immediately.\n",
		name, newPassword)
	return es.send(toEmail, "Password Reset", body)
}
