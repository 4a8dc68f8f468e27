package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail sends an HTML email using the configured SMTP server. Callers
// treat failures as non-fatal; a lost notification must never roll back a
// ledger transaction.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendReceiptDecisionEmail notifies a realtor of a receipt review outcome
func SendReceiptDecisionEmail(to string, receiptID uint, status, reason string) error {
	subject := fmt.Sprintf("Your sale receipt #%d was %s", receiptID, status)
	body := fmt.Sprintf(`
		<h2>Receipt Review Update</h2>
		<p>Your sale receipt #%d has been <b>%s</b>.</p>
	`, receiptID, status)
	if reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	return SendEmail(to, subject, body)
}

// SendPayoutDecisionEmail notifies a realtor of a payout status change
func SendPayoutDecisionEmail(to string, payoutID uint, status string, amount float64) error {
	subject := fmt.Sprintf("Withdrawal request #%d is now %s", payoutID, status)
	body := fmt.Sprintf(`
		<h2>Withdrawal Update</h2>
		<p>Your withdrawal request #%d for %.2f is now <b>%s</b>.</p>
	`, payoutID, amount, status)
	return SendEmail(to, subject, body)
}
