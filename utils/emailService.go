package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"synapse/config"
)

// SendEmail delivers an HTML mail through the configured SMTP account.
// Skipped silently when no sender is configured (local development).
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Synapse AI <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #1A1A2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #6C63FF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SYNAPSE AI</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Synapse AI. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly synced user with their free credit grant
func SendWelcomeEmail(email, name string, credits int) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Synapse AI! Your account is ready to go.</p>
		<div class="info-box">
			You have <strong>%d free credits</strong> to spend on social posts,
			blog ideas, code explanations and full blog posts.
		</div>
		<p>Happy creating!</p>
	`, name, credits)

	go SendEmail([]string{email}, "Welcome to Synapse AI", getEmailTemplate("Welcome aboard", body))
}

// SendTicketReplyEmail notifies a ticket owner that support has responded
func SendTicketReplyEmail(email, name, ticketNumber, message string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Our support team replied to your ticket <strong>%s</strong>:</p>
		<div class="info-box">%s</div>
		<p>You can reply from your support page.</p>
	`, name, ticketNumber, message)

	go SendEmail([]string{email}, "New reply on ticket "+ticketNumber, getEmailTemplate("Support update", body))
}
