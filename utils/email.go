package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SendEmail sends an email using SMTP
func SendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUsername := os.Getenv("SMTP_USERNAME")
	smtpPassword := os.Getenv("SMTP_PASSWORD")

	message := fmt.Sprintf("Subject: %s\r\n"+
		"To: %s\r\n"+
		"Content-Type: text/html; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", subject, to, body)

	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	err := smtp.SendMail(addr, auth, smtpUsername, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendZelleReviewEmail notifies a student that their bank-transfer payment
// was reviewed
func SendZelleReviewEmail(to, name, status, notes string) error {
	config := EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587, // Default SMTP port
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your %s payment was %s", AppName, status))

	body := fmt.Sprintf(`
		<h2>Hello %s,</h2>
		<p>Your Zelle payment has been reviewed and marked <strong>%s</strong>.</p>
	`, name, strings.ToUpper(status))
	if notes != "" {
		body += fmt.Sprintf("<p>Reviewer notes: %s</p>", notes)
	}
	body += `<p>If you have questions about this decision, reply to this email.</p>`
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendWelcomeEmail greets a newly registered student
func SendWelcomeEmail(to, name string) error {
	subject := fmt.Sprintf("Welcome to %s", AppName)
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. You can now browse scholarships and start your application.</p>
		<p><a href="%s">Go to your dashboard</a></p>
	`, name, os.Getenv("FRONTEND_URL"))

	return SendEmail(to, subject, body)
}
