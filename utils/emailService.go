package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/Teja3804/asset-reddy/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Asset Management Reddy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp-box { text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>ASSET MANAGEMENT REDDY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Asset Management Reddy. All rights reserved.<br>
				Investments are subject to market risk. Please read all documents carefully.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail delivers a verification code to an email address.
func SendOTPEmail(otp, email string) error {
	subject := "OTP Verification Code"
	body := fmt.Sprintf(`
		<p style="text-align: center;">Your One Time Password (OTP) is:</p>
		<h1 class="otp-box">%s</h1>
		<p style="text-align: center;">This code is valid for %d minutes. Do not share it with anyone.</p>
	`, otp, config.AppConfig.OtpExpiryMinutes)

	return SendEmail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(email, firstName string) {
	subject := "Welcome to Asset Management Reddy"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created successfully. You can now add funds, browse the fund catalog and start your investment journey.</p>
		<p>If you have any questions, feel free to raise a support ticket.</p>
	`, firstName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendSupportTicketEmail notifies the support desk about a new ticket.
func SendSupportTicketEmail(ticketNumber, username, subject, message string) {
	mailSubject := "Support Ticket #" + ticketNumber
	body := fmt.Sprintf(`
		<p>New support ticket from <strong>%s</strong>.</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>
	`, username, subject, message)

	go SendEmail([]string{config.AppConfig.SupportEmail}, mailSubject, getEmailTemplate("New Support Ticket", body))
}
